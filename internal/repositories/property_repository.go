package repositories

import (
	"context"

	"realestate-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const propertyColumns = `id, name, slug, description, location, price, price_type,
	property_type, status, featured, bedrooms, bathrooms, area, image,
	latitude, longitude, created_at`

// PropertyFacetRow carries the facet columns of one properties row. The
// properties page filters on location and property_type only.
type PropertyFacetRow struct {
	Location     *string
	PropertyType *string
}

type PropertyRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPropertyRepository(pool *pgxpool.Pool, logger *zap.Logger) *PropertyRepository {
	return &PropertyRepository{pool: pool, logger: logger}
}

// List runs the count query and the row query for one properties listing
// page. Same non-snapshot caveat as the projects listing.
func (r *PropertyRepository) List(ctx context.Context, f ListFilter) ([]models.Property, int, error) {
	c := propertyFilterConditions(f)
	where := c.whereClause()

	var total int
	countQuery := "SELECT COUNT(*) FROM properties" + where
	if err := r.pool.QueryRow(ctx, countQuery, c.args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count properties")
	}

	window, args := pageWindow(f, c.args)
	rowQuery := "SELECT " + propertyColumns + " FROM properties" + where + propertyOrderClause(f.Sort) + window

	r.logger.Debug("listing properties", zap.String("sort", f.Sort), zap.Int("limit", f.Limit), zap.Int("offset", f.Offset))

	rows, err := r.pool.Query(ctx, rowQuery, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "query properties")
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

// FacetRows scans location and property_type off every properties row.
func (r *PropertyRepository) FacetRows(ctx context.Context) ([]PropertyFacetRow, error) {
	rows, err := r.pool.Query(ctx, "SELECT location, property_type FROM properties")
	if err != nil {
		return nil, errors.Wrap(err, "query property facets")
	}
	defer rows.Close()

	var facets []PropertyFacetRow
	for rows.Next() {
		var f PropertyFacetRow
		if err := rows.Scan(&f.Location, &f.PropertyType); err != nil {
			return nil, errors.Wrap(err, "scan property facet row")
		}
		facets = append(facets, f)
	}
	return facets, rows.Err()
}

// GetBySlug resolves a property by slug. Returns ErrNotFound when no row
// matches.
func (r *PropertyRepository) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	query := "SELECT " + propertyColumns + " FROM properties WHERE slug = $1"

	rows, err := r.pool.Query(ctx, query, slug)
	if err != nil {
		return nil, errors.Wrap(err, "query property by slug")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "query property by slug")
		}
		return nil, ErrNotFound
	}
	return scanProperty(rows)
}

func scanProperty(rows pgx.Rows) (*models.Property, error) {
	var p models.Property
	err := rows.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Location, &p.Price, &p.PriceType,
		&p.PropertyType, &p.Status, &p.Featured, &p.Bedrooms, &p.Bathrooms, &p.Area,
		&p.Image, &p.Latitude, &p.Longitude, &p.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "scan property")
	}
	return &p, nil
}
