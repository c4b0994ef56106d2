package repositories

import (
	"context"

	"realestate-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ProjectAssetsRepository reads the child collections hanging off a project:
// images, typical units, files, payment plans, amenities, nearby places and
// parking allocations. All queries are keyed by project_id and ordered by
// display_order.
type ProjectAssetsRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectAssetsRepository(pool *pgxpool.Pool, logger *zap.Logger) *ProjectAssetsRepository {
	return &ProjectAssetsRepository{pool: pool, logger: logger}
}

func (r *ProjectAssetsRepository) ImagesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectImage, error) {
	query := `
		SELECT id, project_id, image_url, is_primary, display_order, alt_text
		FROM project_images WHERE project_id = $1
		ORDER BY display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query project images")
	}
	defer rows.Close()

	var images []models.ProjectImage
	for rows.Next() {
		var img models.ProjectImage
		if err := rows.Scan(&img.ID, &img.ProjectID, &img.ImageURL, &img.IsPrimary, &img.DisplayOrder, &img.AltText); err != nil {
			return nil, errors.Wrap(err, "scan project image")
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *ProjectAssetsRepository) UnitsByProject(ctx context.Context, projectID uuid.UUID) ([]models.TypicalUnit, error) {
	query := `
		SELECT id, project_id, bedrooms, price_min, price_max, area_min, area_max,
			floor_plan_image, display_order
		FROM project_typical_units WHERE project_id = $1
		ORDER BY display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query typical units")
	}
	defer rows.Close()

	var units []models.TypicalUnit
	for rows.Next() {
		var u models.TypicalUnit
		err := rows.Scan(&u.ID, &u.ProjectID, &u.Bedrooms, &u.PriceMin, &u.PriceMax,
			&u.AreaMin, &u.AreaMax, &u.FloorPlanImage, &u.DisplayOrder)
		if err != nil {
			return nil, errors.Wrap(err, "scan typical unit")
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *ProjectAssetsRepository) FilesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectFile, error) {
	query := `
		SELECT id, project_id, name, file_url, file_type, display_order
		FROM project_files WHERE project_id = $1
		ORDER BY display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query project files")
	}
	defer rows.Close()

	var files []models.ProjectFile
	for rows.Next() {
		var f models.ProjectFile
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.Name, &f.FileURL, &f.FileType, &f.DisplayOrder); err != nil {
			return nil, errors.Wrap(err, "scan project file")
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// PaymentPlansByProject orders by plan_name first so milestones of the same
// named plan come out adjacent, then by display_order within the plan.
func (r *ProjectAssetsRepository) PaymentPlansByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectPaymentPlan, error) {
	query := `
		SELECT id, project_id, plan_name, milestone, percentage, payment_count, display_order
		FROM project_payment_plans WHERE project_id = $1
		ORDER BY plan_name ASC, display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query payment plans")
	}
	defer rows.Close()

	var plans []models.ProjectPaymentPlan
	for rows.Next() {
		var p models.ProjectPaymentPlan
		err := rows.Scan(&p.ID, &p.ProjectID, &p.PlanName, &p.Milestone, &p.Percentage,
			&p.PaymentCount, &p.DisplayOrder)
		if err != nil {
			return nil, errors.Wrap(err, "scan payment plan")
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (r *ProjectAssetsRepository) AmenitiesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectAmenity, error) {
	query := `
		SELECT id, project_id, name, description, image, display_order
		FROM project_amenities WHERE project_id = $1
		ORDER BY display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query amenities")
	}
	defer rows.Close()

	var amenities []models.ProjectAmenity
	for rows.Next() {
		var a models.ProjectAmenity
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Name, &a.Description, &a.Image, &a.DisplayOrder); err != nil {
			return nil, errors.Wrap(err, "scan amenity")
		}
		amenities = append(amenities, a)
	}
	return amenities, rows.Err()
}

func (r *ProjectAssetsRepository) NearbyPlacesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectNearbyPlace, error) {
	query := `
		SELECT id, project_id, name, distance, display_order
		FROM project_nearby_places WHERE project_id = $1
		ORDER BY display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query nearby places")
	}
	defer rows.Close()

	var places []models.ProjectNearbyPlace
	for rows.Next() {
		var p models.ProjectNearbyPlace
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Distance, &p.DisplayOrder); err != nil {
			return nil, errors.Wrap(err, "scan nearby place")
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func (r *ProjectAssetsRepository) ParkingsByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectParking, error) {
	query := `
		SELECT id, project_id, unit_type, parking_count, display_order
		FROM project_parkings WHERE project_id = $1
		ORDER BY display_order ASC
	`
	rows, err := r.pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "query parkings")
	}
	defer rows.Close()

	var parkings []models.ProjectParking
	for rows.Next() {
		var p models.ProjectParking
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.UnitType, &p.ParkingCount, &p.DisplayOrder); err != nil {
			return nil, errors.Wrap(err, "scan parking")
		}
		parkings = append(parkings, p)
	}
	return parkings, rows.Err()
}
