package requests

import "github.com/osamigbe/account-service/models"

type CreateAccountRequest struct {
	Name        string       `json:"name" validate:"required"`
	Email       string       `json:"email" validate:"required"`
	Address     string       `json:"address" validate:"required"`
	PhoneNumber *string      `json:"phone_number"`
	DateJoined  *models.Date `json:"date_joined"`
}
