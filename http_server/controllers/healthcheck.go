package controllers

import (
	"log"
	"net/http"

	"portfolio0/utils"
)

type HealthCheckHTTPController interface {
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

type healthCheckHTTPController struct {
	logger *log.Logger
}

func NewHealthCheckHTTPController(logger *log.Logger) HealthCheckHTTPController {
	return &healthCheckHTTPController{
		logger: logger,
	}
}

func (controller *healthCheckHTTPController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.SendJSON(w, map[string]string{"status": "ok"}, true, http.StatusOK, nil)
}
