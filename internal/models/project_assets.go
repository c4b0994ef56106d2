package models

import "github.com/google/uuid"

// Child collections of a project. display_order defines render sequence
// within each parent-scoped collection; ties fall back to database order.

type ProjectImage struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	ImageURL     string    `json:"image_url"`
	IsPrimary    bool      `json:"is_primary"`
	DisplayOrder int       `json:"display_order"`
	AltText      *string   `json:"alt_text"`
}

// TypicalUnit describes a unit type offered in a project. Bedrooms == 0
// means a studio.
type TypicalUnit struct {
	ID             uuid.UUID `json:"id"`
	ProjectID      uuid.UUID `json:"project_id"`
	Bedrooms       int       `json:"bedrooms"`
	PriceMin       *float64  `json:"price_min"`
	PriceMax       *float64  `json:"price_max"`
	AreaMin        *float64  `json:"area_min"`
	AreaMax        *float64  `json:"area_max"`
	FloorPlanImage *string   `json:"floor_plan_image"`
	DisplayOrder   int       `json:"display_order"`
}

type ProjectFile struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Name         string    `json:"name"`
	FileURL      string    `json:"file_url"`
	FileType     *string   `json:"file_type"`
	DisplayOrder int       `json:"display_order"`
}

// ProjectPaymentPlan is one milestone row; rows sharing a plan_name form a
// named plan, ordered by display_order within that plan.
type ProjectPaymentPlan struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	PlanName     string    `json:"plan_name"`
	Milestone    string    `json:"milestone"`
	Percentage   *float64  `json:"percentage"`
	PaymentCount *int      `json:"payment_count"`
	DisplayOrder int       `json:"display_order"`
}

type ProjectAmenity struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Image        *string   `json:"image"`
	DisplayOrder int       `json:"display_order"`
}

type ProjectNearbyPlace struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Name         string    `json:"name"`
	Distance     *string   `json:"distance"`
	DisplayOrder int       `json:"display_order"`
}

type ProjectParking struct {
	ID           uuid.UUID `json:"id"`
	ProjectID    uuid.UUID `json:"project_id"`
	UnitType     string    `json:"unit_type"`
	ParkingCount *int      `json:"parking_count"`
	DisplayOrder int       `json:"display_order"`
}
