package services

import (
	"database/sql"

	"go.uber.org/zap"
)

type service struct {
	dataDB         *sql.DB
	accountService AccountService

	log *zap.Logger
}

var accountColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}
