package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/osamigbe/account-service/types/responses"
	"github.com/osamigbe/account-service/utils"
)

const (
	serviceName    = "Account REST API Service"
	serviceVersion = "1.0"
)

type SystemHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
	Index(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewSystemHandler(log *zap.Logger) SystemHandler {
	return &systemHandler{
		handler: handler{log: log},
	}
}

type systemHandler struct {
	handler
}

func (s *systemHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.Index)
	mux.HandleFunc("GET /health", s.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
}

func (s *systemHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, &responses.HealthResponseData{Status: "OK"})
}

func (s *systemHandler) Index(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, &responses.ServiceInfoResponseData{
		Name:    serviceName,
		Version: serviceVersion,
	})
}
