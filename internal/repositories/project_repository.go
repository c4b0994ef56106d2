package repositories

import (
	"context"

	"realestate-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const projectColumns = `id, name, slug, location, price, price_max, completion_date,
	developer, developer_id, category, status, featured, image, description,
	video_url, general_plan_image, latitude, longitude, coordinates, address, created_at`

const projectSummaryColumns = `id, name, slug, location, price, completion_date,
	developer, category, status, featured, image`

// ProjectFacetRow carries the facet columns of one projects row, used to
// derive the distinct filter options offered by the listing page.
type ProjectFacetRow struct {
	Location *string
	Category *string
	Status   *string
}

type ProjectRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewProjectRepository(pool *pgxpool.Pool, logger *zap.Logger) *ProjectRepository {
	return &ProjectRepository{pool: pool, logger: logger}
}

// List runs the count query and the row query for one listing page. The two
// queries are not wrapped in a transaction; a write landing between them can
// skew TotalCount against the returned window.
func (r *ProjectRepository) List(ctx context.Context, f ListFilter) ([]models.ProjectSummary, int, error) {
	c := projectFilterConditions(f)
	where := c.whereClause()

	var total int
	countQuery := "SELECT COUNT(*) FROM projects" + where
	if err := r.pool.QueryRow(ctx, countQuery, c.args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "count projects")
	}

	window, args := pageWindow(f, c.args)
	rowQuery := "SELECT " + projectSummaryColumns + " FROM projects" + where + projectOrderClause(f.Sort) + window

	r.logger.Debug("listing projects", zap.String("sort", f.Sort), zap.Int("limit", f.Limit), zap.Int("offset", f.Offset))

	rows, err := r.pool.Query(ctx, rowQuery, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "query projects")
	}
	defer rows.Close()

	projects, err := scanProjectSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// FacetRows scans the facet columns of every projects row. The listing page
// recomputes its filter options from this scan on every request.
func (r *ProjectRepository) FacetRows(ctx context.Context) ([]ProjectFacetRow, error) {
	rows, err := r.pool.Query(ctx, "SELECT location, category, status FROM projects")
	if err != nil {
		return nil, errors.Wrap(err, "query project facets")
	}
	defer rows.Close()

	var facets []ProjectFacetRow
	for rows.Next() {
		var f ProjectFacetRow
		if err := rows.Scan(&f.Location, &f.Category, &f.Status); err != nil {
			return nil, errors.Wrap(err, "scan project facet row")
		}
		facets = append(facets, f)
	}
	return facets, rows.Err()
}

// ListAll returns every project, optionally restricted to one category,
// featured first then newest.
func (r *ProjectRepository) ListAll(ctx context.Context, category string) ([]models.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects"
	var args []any
	if !categorySkipped(category) {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY featured DESC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query all projects")
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, rows.Err()
}

// GetBySlug resolves a project by its slug, the only externally addressable
// key. Returns ErrNotFound when no row matches.
func (r *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE slug = $1"
	rows, err := r.pool.Query(ctx, query, slug)
	if err != nil {
		return nil, errors.Wrap(err, "query project by slug")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "query project by slug")
		}
		return nil, ErrNotFound
	}
	return scanProject(rows)
}

// GetWithDeveloper resolves a project by slug joined with its developer row.
// The developer is nil when the project has none.
func (r *ProjectRepository) GetWithDeveloper(ctx context.Context, slug string) (*models.Project, *models.Developer, error) {
	query := `
		SELECT p.id, p.name, p.slug, p.location, p.price, p.price_max, p.completion_date,
			p.developer, p.developer_id, p.category, p.status, p.featured, p.image,
			p.description, p.video_url, p.general_plan_image, p.latitude, p.longitude,
			p.coordinates, p.address, p.created_at,
			d.id, d.name, d.logo, d.description, d.website
		FROM projects p
		LEFT JOIN developers d ON d.id = p.developer_id
		WHERE p.slug = $1
	`

	var p models.Project
	var devID *uuid.UUID
	var devName *string
	var devLogo, devDescription, devWebsite *string

	err := r.pool.QueryRow(ctx, query, slug).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Location, &p.Price, &p.PriceMax, &p.CompletionDate,
		&p.Developer, &p.DeveloperID, &p.Category, &p.Status, &p.Featured, &p.Image,
		&p.Description, &p.VideoURL, &p.GeneralPlanImage, &p.Latitude, &p.Longitude,
		&p.Coordinates, &p.Address, &p.CreatedAt,
		&devID, &devName, &devLogo, &devDescription, &devWebsite,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, errors.Wrap(err, "query project with developer")
	}

	var dev *models.Developer
	if devID != nil && devName != nil {
		dev = &models.Developer{
			ID:          *devID,
			Name:        *devName,
			Logo:        devLogo,
			Description: devDescription,
			Website:     devWebsite,
		}
	}
	return &p, dev, nil
}

// Related returns up to limit other projects, featured first then newest.
// Candidates are not restricted to the same category; see DESIGN.md.
func (r *ProjectRepository) Related(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.ProjectSummary, error) {
	query := "SELECT " + projectSummaryColumns + ` FROM projects
		WHERE id <> $1
		ORDER BY featured DESC, created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, excludeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query related projects")
	}
	defer rows.Close()

	return scanProjectSummaries(rows)
}

func scanProject(rows pgx.Rows) (*models.Project, error) {
	var p models.Project
	err := rows.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Location, &p.Price, &p.PriceMax, &p.CompletionDate,
		&p.Developer, &p.DeveloperID, &p.Category, &p.Status, &p.Featured, &p.Image,
		&p.Description, &p.VideoURL, &p.GeneralPlanImage, &p.Latitude, &p.Longitude,
		&p.Coordinates, &p.Address, &p.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "scan project")
	}
	return &p, nil
}

func scanProjectSummaries(rows pgx.Rows) ([]models.ProjectSummary, error) {
	var projects []models.ProjectSummary
	for rows.Next() {
		var p models.ProjectSummary
		err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Location, &p.Price, &p.CompletionDate,
			&p.Developer, &p.Category, &p.Status, &p.Featured, &p.Image,
		)
		if err != nil {
			return nil, errors.Wrap(err, "scan project summary")
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
