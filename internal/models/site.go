package models

import (
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type Partner struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	LogoURL *string   `json:"logo_url"`
}
