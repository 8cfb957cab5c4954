package service

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"portfolio0/db"
	"portfolio0/notifier"
	"portfolio0/repository"
	"portfolio0/utils"
)

// ErrNoFields is the outcome of an update called with zero recognized
// fields: no write happens and callers print a warning instead of an error.
var ErrNoFields = utils.HTTPGenericError(http.StatusBadRequest, "no updates provided")

type Services struct {
	AboutService   AboutService
	ProjectService ProjectService
	BlogService    BlogService
	SkillService   SkillService
	ContactService ContactService
	QueryService   QueryService
}

func NewServices(logger hclog.Logger, store db.DataStore, notify notifier.Notifier) *Services {
	aboutRepo := repository.NewAboutRepo(logger, store)
	projectRepo := repository.NewProjectRepo(logger, store)
	blogPostRepo := repository.NewBlogPostRepo(logger, store)
	skillRepo := repository.NewSkillRepo(logger, store)
	contactInfoRepo := repository.NewContactInfoRepo(logger, store)

	return &Services{
		AboutService:   NewAboutService(logger, aboutRepo, notify),
		ProjectService: NewProjectService(logger, projectRepo, notify),
		BlogService:    NewBlogService(logger, blogPostRepo, notify),
		SkillService:   NewSkillService(logger, skillRepo, notify),
		ContactService: NewContactService(logger, contactInfoRepo, notify),
		QueryService: NewQueryService(
			logger,
			aboutRepo,
			projectRepo,
			blogPostRepo,
			skillRepo,
			contactInfoRepo,
		),
	}
}
