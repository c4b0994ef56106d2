package models

import (
	"time"

	"github.com/google/uuid"
)

// Project matches the projects table. All columns except id, name, slug,
// featured and created_at are nullable in the external schema.
type Project struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Location         *string    `json:"location"`
	Price            *float64   `json:"price"`
	PriceMax         *float64   `json:"price_max"`
	CompletionDate   *time.Time `json:"completion_date"`
	Developer        *string    `json:"developer"`
	DeveloperID      *uuid.UUID `json:"developer_id"`
	Category         *string    `json:"category"`
	Status           *string    `json:"status"` // 'Pre Launch', 'On Sale' or 'Sold Out'
	Featured         bool       `json:"featured"`
	Image            *string    `json:"image"`
	Description      *string    `json:"description"`
	VideoURL         *string    `json:"video_url"`
	GeneralPlanImage *string    `json:"general_plan_image"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
	Coordinates      *string    `json:"coordinates"`
	Address          *string    `json:"address"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ProjectSummary is the card-sized projection served by the listing page and
// the related-projects endpoint.
type ProjectSummary struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	Location       *string    `json:"location"`
	Price          *float64   `json:"price"`
	CompletionDate *time.Time `json:"completion_date"`
	Developer      *string    `json:"developer"`
	Category       *string    `json:"category"`
	Status         *string    `json:"status"`
	Featured       bool       `json:"featured"`
	Image          *string    `json:"image"`
}

type Developer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Logo        *string   `json:"logo"`
	Description *string   `json:"description"`
	Website     *string   `json:"website"`
}
