package db

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/osamigbe/account-service/config"
)

// GetDataDBConnection opens the accounts database from the configured DSN.
// ParseTime is forced on so DATE columns scan into time values.
func GetDataDBConnection(cfg *config.Config, log *zap.Logger) (*sql.DB, error) {
	dsn, err := mysql.ParseDSN(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database dsn: %w", err)
	}
	dsn.ParseTime = true
	dsn.MultiStatements = true

	dataDb, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, err
	}

	if err := dataDb.Ping(); err != nil {
		dataDb.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info("connected to database", zap.String("addr", dsn.Addr), zap.String("db", dsn.DBName))

	return dataDb, nil
}
