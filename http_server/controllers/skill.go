package controllers

import (
	"log"
	"net/http"

	"portfolio0/service"
	"portfolio0/utils"
)

type SkillHTTPController interface {
	ListSkills(w http.ResponseWriter, r *http.Request)
	ListSkillsByCategory(w http.ResponseWriter, r *http.Request)
}

type skillHTTPController struct {
	logger       *log.Logger
	queryService service.QueryService
}

func NewSkillHTTPController(logger *log.Logger, queryService service.QueryService) SkillHTTPController {
	return &skillHTTPController{
		logger:       logger,
		queryService: queryService,
	}
}

// ListSkills returns active skills, optionally filtered by the category
// query parameter
func (controller *skillHTTPController) ListSkills(w http.ResponseWriter, r *http.Request) {
	var category *string
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = &raw
	}

	skills := controller.queryService.GetSkills(category)
	utils.SendJSON(w, skills, true, http.StatusOK, nil)
}

// ListSkillsByCategory returns active skills grouped by category
func (controller *skillHTTPController) ListSkillsByCategory(w http.ResponseWriter, r *http.Request) {
	grouped := controller.queryService.GetSkillsByCategory()
	utils.SendJSON(w, grouped, true, http.StatusOK, nil)
}
