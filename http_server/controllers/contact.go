package controllers

import (
	"log"
	"net/http"

	"portfolio0/service"
	"portfolio0/utils"
)

type ContactHTTPController interface {
	GetContactInfo(w http.ResponseWriter, r *http.Request)
}

type contactHTTPController struct {
	logger       *log.Logger
	queryService service.QueryService
}

func NewContactHTTPController(logger *log.Logger, queryService service.QueryService) ContactHTTPController {
	return &contactHTTPController{
		logger:       logger,
		queryService: queryService,
	}
}

// GetContactInfo returns the active contact info entry
func (controller *contactHTTPController) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	contactInfo := controller.queryService.GetContactInfo()
	if contactInfo == nil {
		utils.SendJSON(w, "contact info not found", false, http.StatusNotFound, nil)
		return
	}
	utils.SendJSON(w, contactInfo, true, http.StatusOK, nil)
}
