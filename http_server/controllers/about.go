package controllers

import (
	"log"
	"net/http"

	"portfolio0/service"
	"portfolio0/utils"
)

type AboutHTTPController interface {
	GetAbout(w http.ResponseWriter, r *http.Request)
}

type aboutHTTPController struct {
	logger       *log.Logger
	queryService service.QueryService
}

func NewAboutHTTPController(logger *log.Logger, queryService service.QueryService) AboutHTTPController {
	return &aboutHTTPController{
		logger:       logger,
		queryService: queryService,
	}
}

// GetAbout returns the active about entry
func (controller *aboutHTTPController) GetAbout(w http.ResponseWriter, r *http.Request) {
	about := controller.queryService.GetAbout()
	if about == nil {
		utils.SendJSON(w, "about entry not found", false, http.StatusNotFound, nil)
		return
	}
	utils.SendJSON(w, about, true, http.StatusOK, nil)
}
