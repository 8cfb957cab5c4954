package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"portfolio0/service"
	"portfolio0/utils"
)

type BlogHTTPController interface {
	ListBlogPosts(w http.ResponseWriter, r *http.Request)
	GetOneBlogPost(w http.ResponseWriter, r *http.Request)
}

type blogHTTPController struct {
	logger       *log.Logger
	queryService service.QueryService
}

func NewBlogHTTPController(logger *log.Logger, queryService service.QueryService) BlogHTTPController {
	return &blogHTTPController{
		logger:       logger,
		queryService: queryService,
	}
}

// ListBlogPosts returns published blog posts, optionally filtered by the
// featured query parameter
func (controller *blogHTTPController) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			utils.SendJSON(w, "featured must be a boolean", false, http.StatusBadRequest, nil)
			return
		}
		featured = &value
	}

	posts := controller.queryService.GetBlogPosts(featured)
	utils.SendJSON(w, posts, true, http.StatusOK, nil)
}

// GetOneBlogPost returns a single published blog post by slug
func (controller *blogHTTPController) GetOneBlogPost(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	slug := params["slug"]

	post := controller.queryService.GetBlogPostBySlug(slug)
	if post == nil {
		utils.SendJSON(w, "blog post not found", false, http.StatusNotFound, nil)
		return
	}
	utils.SendJSON(w, post, true, http.StatusOK, nil)
}
