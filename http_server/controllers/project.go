package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"portfolio0/service"
	"portfolio0/utils"
)

type ProjectHTTPController interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	GetOneProject(w http.ResponseWriter, r *http.Request)
}

type projectHTTPController struct {
	logger       *log.Logger
	queryService service.QueryService
}

func NewProjectHTTPController(logger *log.Logger, queryService service.QueryService) ProjectHTTPController {
	return &projectHTTPController{
		logger:       logger,
		queryService: queryService,
	}
}

// ListProjects returns published projects, optionally filtered by the
// featured query parameter
func (controller *projectHTTPController) ListProjects(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			utils.SendJSON(w, "featured must be a boolean", false, http.StatusBadRequest, nil)
			return
		}
		featured = &value
	}

	projects := controller.queryService.GetProjects(featured)
	utils.SendJSON(w, projects, true, http.StatusOK, nil)
}

// GetOneProject returns a single published project by slug
func (controller *projectHTTPController) GetOneProject(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	slug := params["slug"]

	project := controller.queryService.GetProjectBySlug(slug)
	if project == nil {
		utils.SendJSON(w, "project not found", false, http.StatusNotFound, nil)
		return
	}
	utils.SendJSON(w, project, true, http.StatusOK, nil)
}
