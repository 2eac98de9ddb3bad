package errors

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
)

type ErrorType string

const (
	ErrNotFound         ErrorType = "ENTRY_NOT_FOUND_ERROR"
	ErrValidation       ErrorType = "VALIDATION_ERROR"
	ErrEntryExists      ErrorType = "ENTRY_EXISTS_ERROR"
	ErrUnsupportedMedia ErrorType = "UNSUPPORTED_MEDIA_TYPE_ERROR"
	ErrFatal            ErrorType = "FATAL_ERROR"
)

type AppError struct {
	Code     int       `json:"-"`
	Type     ErrorType `json:"type"`
	Message  string    `json:"message"`
	Internal string    `json:"internal,omitempty"`
}

func (a AppError) Error() string {
	return fmt.Sprintf("%s: %s", a.Type, a.Message)
}

func (a AppError) Serialize(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(a.Code)
	if err := json.NewEncoder(w).Encode(a); err != nil {
		panic(a)
	}
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

// mysql duplicate entry
const dupEntry = 1062

func HandleDataDBError(err error) AppError {
	if Is(err, sql.ErrNoRows) {
		return NewNotFoundError("resource not found")
	}
	mysqlErr := new(mysql.MySQLError)
	if errors.As(err, &mysqlErr) && mysqlErr.Number == dupEntry {
		return NewEntryExistsError("resource already exists")
	}
	return NewFatalError(err)
}

func HandleBindError(err error) AppError {
	if errors.As(err, &AppError{}) {
		return AsAppError(err)
	}

	if v, ok := err.(validator.ValidationErrors); ok {
		var message string
		switch v[0].ActualTag() {
		case "required":
			message = fmt.Sprintf("%s is required", v[0].Field())
		case "oneof":
			message = fmt.Sprintf("%s must be one of values: (%s), value received: %s", v[0].Field(), v[0].Param(), v[0].Value())
		case "lte":
			message = fmt.Sprintf("%s must be at most (%s), value received: %v", v[0].Field(), v[0].Param(), v[0].Value())
		default:
			message = fmt.Sprintf("Validation failed on field { %s }, Condition: %s", v[0].Field(), v[0].ActualTag())
			if v[0].Param() != "" {
				message += fmt.Sprintf("{ %s }", v[0].Param())
			}
			if v[0].Value() != "" && v[0].Value() != nil {
				message += fmt.Sprintf(", Value Received: %v", v[0].Value())
			}
		}

		return AppError{
			Code:     http.StatusBadRequest,
			Type:     ErrValidation,
			Message:  message,
			Internal: err.Error(),
		}
	}
	if Is(err, io.EOF) {
		return NewValidationError("No request body")
	}

	vErr := NewValidationError("invalid request received")
	vErr.Internal = err.Error()

	return vErr
}

func NewValidationError(msg string) AppError {
	return AppError{
		Code:    http.StatusBadRequest,
		Type:    ErrValidation,
		Message: msg,
	}
}

func NewNotFoundError(msg string) AppError {
	return AppError{
		Code:    http.StatusNotFound,
		Type:    ErrNotFound,
		Message: msg,
	}
}

func NewEntryExistsError(msg string) AppError {
	return AppError{
		Code:    http.StatusConflict,
		Type:    ErrEntryExists,
		Message: msg,
	}
}

func NewUnsupportedMediaTypeError(msg string) AppError {
	return AppError{
		Code:    http.StatusUnsupportedMediaType,
		Type:    ErrUnsupportedMedia,
		Message: msg,
	}
}

func NewFatalError(err error) AppError {
	debug.PrintStack()
	return AppError{
		Code:     http.StatusInternalServerError,
		Type:     ErrFatal,
		Message:  "Oops! something happened on our end.",
		Internal: err.Error(),
	}
}

func AsAppError(err error) AppError {
	apperr := new(AppError)
	if errors.As(err, apperr) {
		return *apperr
	}
	return NewFatalError(err)
}
