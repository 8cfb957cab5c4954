package http_server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	httplogger "github.com/go-http-utils/logger"
	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/unrolled/secure"

	"portfolio0/config"
	"portfolio0/constants"
	"portfolio0/db"
	"portfolio0/http_server/controllers"
	"portfolio0/http_server/middlewares"
	"portfolio0/notifier"
	"portfolio0/pagecache"
	"portfolio0/secrets"
	"portfolio0/service"
)

// Start this will start the http server
func Start() {
	logger := log.New(os.Stderr, "[http-server] ", log.LstdFlags)

	configs := config.GetConfigurations()
	portfolioSecrets := secrets.GetSecrets()

	appLogger := hclog.New(&hclog.LoggerOptions{
		Name:  "portfolio0",
		Level: hclog.LevelFromString(configs.LogLevel),
	})

	store := db.NewSqliteDataStore(appLogger, configs.DBFilePath)
	if err := db.RunSetup(store); err != nil {
		logger.Fatalln("failed to run database setup:", err)
	}

	notify := notifier.NewNotifier(
		appLogger,
		configs.SiteURL,
		portfolioSecrets.RevalidationSecret,
		portfolioSecrets.BuildHookURL,
		nil,
	)
	services := service.NewServices(appLogger, store, notify)

	cache := pagecache.NewPageCache(appLogger, time.Duration(configs.CacheTTLSeconds)*time.Second)

	// HTTP router setup
	router := mux.NewRouter()

	// Security middleware
	secureMiddleware := secure.New(secure.Options{FrameDeny: true})

	// Initialize controllers
	aboutController := controllers.NewAboutHTTPController(logger, services.QueryService)
	projectController := controllers.NewProjectHTTPController(logger, services.QueryService)
	blogController := controllers.NewBlogHTTPController(logger, services.QueryService)
	skillController := controllers.NewSkillHTTPController(logger, services.QueryService)
	contactController := controllers.NewContactHTTPController(logger, services.QueryService)
	revalidateController := controllers.NewRevalidateHTTPController(logger, cache, portfolioSecrets.RevalidationSecret)
	healthCheckController := controllers.NewHealthCheckHTTPController(logger)

	// Mount middleware
	middleware := middlewares.NewMiddlewareHandler(logger)

	router.Use(secureMiddleware.Handler)
	router.Use(mux.CORSMethodMiddleware(router))
	router.Use(middleware.ContextMiddleware)
	router.Use(middleware.CacheMiddleware(cache))

	api := router.PathPrefix(constants.APIBasePath).Subrouter()

	// About Endpoint
	api.HandleFunc("/about", aboutController.GetAbout).Methods(http.MethodGet)

	// Projects Endpoint
	api.HandleFunc("/projects", projectController.ListProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects/{slug}", projectController.GetOneProject).Methods(http.MethodGet)

	// Blog Endpoint
	api.HandleFunc("/blog", blogController.ListBlogPosts).Methods(http.MethodGet)
	api.HandleFunc("/blog/{slug}", blogController.GetOneBlogPost).Methods(http.MethodGet)

	// Skills Endpoint
	api.HandleFunc("/skills", skillController.ListSkills).Methods(http.MethodGet)
	api.HandleFunc("/skills/categories", skillController.ListSkillsByCategory).Methods(http.MethodGet)

	// Contact Endpoint
	api.HandleFunc("/contact", contactController.GetContactInfo).Methods(http.MethodGet)

	// Revalidation Endpoint
	api.HandleFunc("/revalidate", revalidateController.Revalidate).Methods(http.MethodPost)
	api.HandleFunc("/revalidate", revalidateController.RevalidateAll).Methods(http.MethodGet)

	// Healthcheck Endpoint
	router.HandleFunc("/healthcheck", healthCheckController.HealthCheck).Methods(http.MethodGet)

	logger.Println("Server is running on port", configs.Port)
	err := http.ListenAndServe(fmt.Sprintf(":%v", configs.Port), httplogger.Handler(router, os.Stdout, httplogger.DevLoggerType))
	if err != nil {
		logger.Fatal("failed to start http-server", err)
	}
}
