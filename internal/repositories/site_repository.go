package repositories

import (
	"context"

	"realestate-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SiteRepository reads the small site-wide collections: partners and
// testimonials.
type SiteRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewSiteRepository(pool *pgxpool.Pool, logger *zap.Logger) *SiteRepository {
	return &SiteRepository{pool: pool, logger: logger}
}

// Partners returns all partners ordered by name.
func (r *SiteRepository) Partners(ctx context.Context) ([]models.Partner, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, name, logo_url FROM partners ORDER BY name ASC")
	if err != nil {
		return nil, errors.Wrap(err, "query partners")
	}
	defer rows.Close()

	var partners []models.Partner
	for rows.Next() {
		var p models.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.LogoURL); err != nil {
			return nil, errors.Wrap(err, "scan partner")
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

// Testimonials returns all testimonials, newest first.
func (r *SiteRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	query := `
		SELECT id, name, role, content, rating, image, created_at
		FROM testimonials
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query testimonials")
	}
	defer rows.Close()

	var testimonials []models.Testimonial
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating, &t.Image, &t.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan testimonial")
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
