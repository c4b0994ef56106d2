package models

import "github.com/google/uuid"

type Agent struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Image          *string   `json:"image"`
	Bio            *string   `json:"bio"`
	Specialization *string   `json:"specialization"`
}
