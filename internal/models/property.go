package models

import (
	"time"

	"github.com/google/uuid"
)

// Property matches the properties table.
type Property struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Price        *float64  `json:"price"`
	PriceType    *string   `json:"price_type"`
	PropertyType *string   `json:"property_type"`
	Status       *string   `json:"status"`
	Featured     bool      `json:"featured"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *float64  `json:"area"`
	Image        *string   `json:"image"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
}
