package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/osamigbe/account-service/services"
)

type handler struct {
	accountService services.AccountService
	middlewares    MiddleWareHandler

	log *zap.Logger
}

type Handler interface {
	ServeHttp(*http.ServeMux)
}
