package models

type Account struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  Date    `json:"date_joined"`
}
