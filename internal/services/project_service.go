package services

import (
	"context"
	"sync"

	"realestate-backend/internal/models"
	"realestate-backend/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// relatedProjectLimit caps the related-projects strip on a detail page.
const relatedProjectLimit = 6

// ProjectStore is the read surface of the projects table.
type ProjectStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.ProjectSummary, int, error)
	FacetRows(ctx context.Context) ([]repositories.ProjectFacetRow, error)
	ListAll(ctx context.Context, category string) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	GetWithDeveloper(ctx context.Context, slug string) (*models.Project, *models.Developer, error)
	Related(ctx context.Context, excludeID uuid.UUID, limit int) ([]models.ProjectSummary, error)
}

// ProjectAssetsStore is the read surface of a project's child collections.
type ProjectAssetsStore interface {
	ImagesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectImage, error)
	UnitsByProject(ctx context.Context, projectID uuid.UUID) ([]models.TypicalUnit, error)
	FilesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectFile, error)
	PaymentPlansByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectPaymentPlan, error)
	AmenitiesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectAmenity, error)
	NearbyPlacesByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectNearbyPlace, error)
	ParkingsByProject(ctx context.Context, projectID uuid.UUID) ([]models.ProjectParking, error)
}

type ProjectService struct {
	projects ProjectStore
	assets   ProjectAssetsStore
	logger   *zap.Logger
}

func NewProjectService(projects ProjectStore, assets ProjectAssetsStore, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		assets:   assets,
		logger:   logger,
	}
}

// ListingFilters echoes the filter state back to the client.
type ListingFilters struct {
	Keyword  string `json:"keyword"`
	Location string `json:"location"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Sort     string `json:"sort"`
}

// ProjectFilterOptions are the facet values offered by the listing page,
// derived from the current dataset.
type ProjectFilterOptions struct {
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
}

// ProjectListPage is everything the projects listing page renders from.
type ProjectListPage struct {
	Projects      []models.ProjectSummary `json:"projects"`
	TotalCount    int                     `json:"totalCount"`
	TotalPages    int                     `json:"totalPages"`
	CurrentPage   int                     `json:"currentPage"`
	PerPage       int                     `json:"perPage"`
	Filters       ListingFilters          `json:"filters"`
	FilterOptions ProjectFilterOptions    `json:"filterOptions"`
}

// PaymentPlanGroup is one named payment plan with its milestones in display
// order. Groups appear in the order their plan_name was first seen.
type PaymentPlanGroup struct {
	PlanName   string                      `json:"plan_name"`
	Milestones []models.ProjectPaymentPlan `json:"milestones"`
}

// ProjectDetail is the denormalized view a project detail page renders from:
// the project row joined with its developer plus every child collection.
// Child slices are always non-nil; a failed or empty child fetch yields an
// empty slice so the page can still render.
type ProjectDetail struct {
	models.Project
	DeveloperInfo     *models.Developer           `json:"developer_info"`
	Images            []models.ProjectImage       `json:"images"`
	TypicalUnits      []models.TypicalUnit        `json:"typical_units"`
	Files             []models.ProjectFile        `json:"files"`
	PaymentPlans      []models.ProjectPaymentPlan `json:"payment_plans"`
	PaymentPlanGroups []PaymentPlanGroup          `json:"payment_plan_groups"`
	Amenities         []models.ProjectAmenity     `json:"amenities"`
	NearbyPlaces      []models.ProjectNearbyPlace `json:"nearby_places"`
	Parkings          []models.ProjectParking     `json:"parkings"`
	RelatedProjects   []models.ProjectSummary     `json:"related_projects"`
}

// ListPage runs the listing pipeline: count + row window under the active
// filters, plus the facet scan for filter options. A failed facet scan
// degrades to empty options; it never blocks the listing.
func (s *ProjectService) ListPage(ctx context.Context, params ListParams) (*ProjectListPage, error) {
	rows, total, err := s.projects.List(ctx, params.Filter())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.ProjectSummary{}
	}

	options := ProjectFilterOptions{
		Locations:  []string{},
		Categories: []string{},
		Statuses:   []string{},
	}
	facets, err := s.projects.FacetRows(ctx)
	if err != nil {
		s.logger.Error("project facet scan failed", zap.Error(err))
	} else {
		locations := make([]*string, 0, len(facets))
		categories := make([]*string, 0, len(facets))
		statuses := make([]*string, 0, len(facets))
		for _, f := range facets {
			locations = append(locations, f.Location)
			categories = append(categories, f.Category)
			statuses = append(statuses, f.Status)
		}
		options.Locations = distinctNonEmpty(locations)
		options.Categories = distinctNonEmpty(categories)
		options.Statuses = distinctNonEmpty(statuses)
	}

	return &ProjectListPage{
		Projects:    rows,
		TotalCount:  total,
		TotalPages:  TotalPages(total, params.PerPage),
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		Filters: ListingFilters{
			Keyword:  params.Keyword,
			Location: params.Location,
			Category: params.Category,
			Status:   params.Status,
			Sort:     params.Sort,
		},
		FilterOptions: options,
	}, nil
}

// All returns every project, optionally filtered by category.
func (s *ProjectService) All(ctx context.Context, category string) ([]models.Project, error) {
	projects, err := s.projects.ListAll(ctx, category)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return projects, nil
}

// GetBySlug resolves one project row.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.projects.GetBySlug(ctx, slug)
}

// Related resolves the slug and returns up to six other projects. The
// candidates are deliberately not restricted to the resolved project's
// category; see DESIGN.md.
func (s *ProjectService) Related(ctx context.Context, slug string) ([]models.ProjectSummary, error) {
	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	related, err := s.projects.Related(ctx, project.ID, relatedProjectLimit)
	if err != nil {
		return nil, err
	}
	if related == nil {
		related = []models.ProjectSummary{}
	}
	return related, nil
}

// Detail assembles the full detail-page view for a slug. The project row
// itself must resolve; every child collection is fetched concurrently and
// independently, and any child failure is logged and replaced with an empty
// slice so the aggregate always materializes.
func (s *ProjectService) Detail(ctx context.Context, slug string) (*ProjectDetail, error) {
	project, developer, err := s.projects.GetWithDeveloper(ctx, slug)
	if err != nil {
		return nil, err
	}

	detail := &ProjectDetail{
		Project:         *project,
		DeveloperInfo:   developer,
		Images:          []models.ProjectImage{},
		TypicalUnits:    []models.TypicalUnit{},
		Files:           []models.ProjectFile{},
		PaymentPlans:    []models.ProjectPaymentPlan{},
		Amenities:       []models.ProjectAmenity{},
		NearbyPlaces:    []models.ProjectNearbyPlace{},
		Parkings:        []models.ProjectParking{},
		RelatedProjects: []models.ProjectSummary{},
	}

	id := project.ID
	var wg sync.WaitGroup
	// Each goroutine writes its own field of detail, so no lock is needed.
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				s.logger.Warn("detail sub-fetch failed",
					zap.String("collection", name),
					zap.String("slug", slug),
					zap.Error(err),
				)
			}
		}()
	}

	fetch("images", func() error {
		images, err := s.assets.ImagesByProject(ctx, id)
		if err != nil {
			return err
		}
		if images != nil {
			detail.Images = images
		}
		return nil
	})
	fetch("typical_units", func() error {
		units, err := s.assets.UnitsByProject(ctx, id)
		if err != nil {
			return err
		}
		if units != nil {
			detail.TypicalUnits = units
		}
		return nil
	})
	fetch("files", func() error {
		files, err := s.assets.FilesByProject(ctx, id)
		if err != nil {
			return err
		}
		if files != nil {
			detail.Files = files
		}
		return nil
	})
	fetch("payment_plans", func() error {
		plans, err := s.assets.PaymentPlansByProject(ctx, id)
		if err != nil {
			return err
		}
		if plans != nil {
			detail.PaymentPlans = plans
		}
		return nil
	})
	fetch("amenities", func() error {
		amenities, err := s.assets.AmenitiesByProject(ctx, id)
		if err != nil {
			return err
		}
		if amenities != nil {
			detail.Amenities = amenities
		}
		return nil
	})
	fetch("nearby_places", func() error {
		places, err := s.assets.NearbyPlacesByProject(ctx, id)
		if err != nil {
			return err
		}
		if places != nil {
			detail.NearbyPlaces = places
		}
		return nil
	})
	fetch("parkings", func() error {
		parkings, err := s.assets.ParkingsByProject(ctx, id)
		if err != nil {
			return err
		}
		if parkings != nil {
			detail.Parkings = parkings
		}
		return nil
	})
	fetch("related_projects", func() error {
		related, err := s.projects.Related(ctx, id, relatedProjectLimit)
		if err != nil {
			return err
		}
		if related != nil {
			detail.RelatedProjects = related
		}
		return nil
	})

	wg.Wait()

	detail.PaymentPlanGroups = GroupPaymentPlans(detail.PaymentPlans)
	return detail, nil
}

// GroupPaymentPlans buckets milestone rows by plan_name, keeping plans in
// first-seen order and milestones in the order they arrived.
func GroupPaymentPlans(plans []models.ProjectPaymentPlan) []PaymentPlanGroup {
	groups := []PaymentPlanGroup{}
	index := make(map[string]int)
	for _, plan := range plans {
		i, ok := index[plan.PlanName]
		if !ok {
			i = len(groups)
			index[plan.PlanName] = i
			groups = append(groups, PaymentPlanGroup{PlanName: plan.PlanName})
		}
		groups[i].Milestones = append(groups[i].Milestones, plan)
	}
	return groups
}
