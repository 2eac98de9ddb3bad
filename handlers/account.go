package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/osamigbe/account-service/errors"
	"github.com/osamigbe/account-service/services"
	"github.com/osamigbe/account-service/types/requests"
	"github.com/osamigbe/account-service/utils"
)

type AccountHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	FetchAllAccounts(w http.ResponseWriter, r *http.Request)
	FetchAccount(w http.ResponseWriter, r *http.Request)
	UpdateAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewAccountHandler(accountService services.AccountService, middlewares MiddleWareHandler, log *zap.Logger) AccountHandler {
	return &accountHandler{
		handler: handler{accountService: accountService, middlewares: middlewares, log: log},
	}
}

type accountHandler struct {
	handler
}

func (a *accountHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("POST /accounts", utils.Middleware(a.CreateAccount, a.middlewares.RequireJSON))
	mux.HandleFunc("GET /accounts", a.FetchAllAccounts)

	mux.HandleFunc("GET /accounts/{account_id}", a.FetchAccount)
	mux.HandleFunc("PUT /accounts/{account_id}", a.UpdateAccount)
	mux.HandleFunc("DELETE /accounts/{account_id}", a.DeleteAccount)
}

func (a *accountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req := new(requests.CreateAccountRequest)
	err := utils.Bind(r, req)
	if err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	res, err := a.accountService.CreateAccount(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", res.ID))
	utils.JSON(w, 201, res)
}

func (a *accountHandler) FetchAllAccounts(w http.ResponseWriter, r *http.Request) {
	req := new(requests.FetchAllAccountsRequest)
	err := utils.Bind(r, req)
	if err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	res, err := a.accountService.FetchAllAccounts(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (a *accountHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	res, err := a.accountService.FetchAccount(r.Context(), id)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (a *accountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	req := new(requests.UpdateAccountRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}
	req.AccountID = id

	res, err := a.accountService.UpdateAccount(r.Context(), req)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, res)
}

func (a *accountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountID(r)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	if err := a.accountService.DeleteAccount(r.Context(), id); err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	w.WriteHeader(204)
	w.Write(nil)
}

// accountID parses the path id. A non-numeric id cannot match any row, so
// it surfaces as a 404 rather than a 400.
func accountID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(r.PathValue("account_id"), 10, 64)
	if err != nil {
		return 0, errors.NewNotFoundError("account id must be an integer")
	}
	return id, nil
}
