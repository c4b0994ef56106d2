package handlers

import (
	"context"
	"errors"
	"net/http"

	"realestate-backend/internal/models"
	"realestate-backend/internal/repositories"
	"realestate-backend/internal/responses"
	"realestate-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PropertyReader interface {
	ListPage(ctx context.Context, params services.ListParams) (*services.PropertyListPage, error)
	GetBySlug(ctx context.Context, slug string) (*models.Property, error)
}

type PropertyHandler struct {
	properties PropertyReader
	logger     *zap.Logger
}

func NewPropertyHandler(properties PropertyReader, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{properties: properties, logger: logger}
}

// ListPage handles GET /properties, degrading to an empty page payload on
// store failure.
func (h *PropertyHandler) ListPage(c *gin.Context) {
	params := services.ParseListParams(c.Request.URL.Query())

	page, err := h.properties.ListPage(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("property listing failed", zap.Error(err))
		page = &services.PropertyListPage{
			Properties:  []models.Property{},
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			Filters: services.ListingFilters{
				Keyword:  params.Keyword,
				Location: params.Location,
				Category: params.Category,
				Status:   params.Status,
				Sort:     params.Sort,
			},
			FilterOptions: services.PropertyFilterOptions{
				Locations:  []string{},
				Categories: []string{},
			},
		}
	}

	c.JSON(http.StatusOK, page)
}

// Detail handles GET /properties/:slug.
func (h *PropertyHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	property, err := h.properties.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Property not found")
			return
		}
		h.logger.Error("property detail failed", zap.String("slug", slug), zap.Error(err))
		responses.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}
