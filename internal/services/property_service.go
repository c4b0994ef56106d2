package services

import (
	"context"

	"realestate-backend/internal/models"
	"realestate-backend/internal/repositories"

	"go.uber.org/zap"
)

// PropertyStore is the read surface of the properties table.
type PropertyStore interface {
	List(ctx context.Context, f repositories.ListFilter) ([]models.Property, int, error)
	FacetRows(ctx context.Context) ([]repositories.PropertyFacetRow, error)
	GetBySlug(ctx context.Context, slug string) (*models.Property, error)
}

type PropertyService struct {
	properties PropertyStore
	logger     *zap.Logger
}

func NewPropertyService(properties PropertyStore, logger *zap.Logger) *PropertyService {
	return &PropertyService{properties: properties, logger: logger}
}

// PropertyFilterOptions are the facet values the properties page offers:
// location and property type only.
type PropertyFilterOptions struct {
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
}

// PropertyListPage is everything the properties listing page renders from.
type PropertyListPage struct {
	Properties    []models.Property     `json:"properties"`
	TotalCount    int                   `json:"totalCount"`
	TotalPages    int                   `json:"totalPages"`
	CurrentPage   int                   `json:"currentPage"`
	PerPage       int                   `json:"perPage"`
	Filters       ListingFilters        `json:"filters"`
	FilterOptions PropertyFilterOptions `json:"filterOptions"`
}

// ListPage runs the properties listing pipeline. Facet scan failures degrade
// to empty options, same as the projects page.
func (s *PropertyService) ListPage(ctx context.Context, params ListParams) (*PropertyListPage, error) {
	rows, total, err := s.properties.List(ctx, params.Filter())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.Property{}
	}

	options := PropertyFilterOptions{
		Locations:  []string{},
		Categories: []string{},
	}
	facets, err := s.properties.FacetRows(ctx)
	if err != nil {
		s.logger.Error("property facet scan failed", zap.Error(err))
	} else {
		locations := make([]*string, 0, len(facets))
		categories := make([]*string, 0, len(facets))
		for _, f := range facets {
			locations = append(locations, f.Location)
			categories = append(categories, f.PropertyType)
		}
		options.Locations = distinctNonEmpty(locations)
		options.Categories = distinctNonEmpty(categories)
	}

	return &PropertyListPage{
		Properties:  rows,
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

// GetBySlug resolves one property row.
func (s *PropertyService) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	return s.properties.GetBySlug(ctx, slug)
}
