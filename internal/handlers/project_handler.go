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

// ProjectReader is what the project handlers need from the service layer.
type ProjectReader interface {
	ListPage(ctx context.Context, params services.ListParams) (*services.ProjectListPage, error)
	All(ctx context.Context, category string) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Related(ctx context.Context, slug string) ([]models.ProjectSummary, error)
	Detail(ctx context.Context, slug string) (*services.ProjectDetail, error)
}

type ProjectHandler struct {
	projects ProjectReader
	logger   *zap.Logger
}

func NewProjectHandler(projects ProjectReader, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// ListPage handles GET /projects. On store failure it degrades to an empty
// page payload instead of erroring; the page always renders.
func (h *ProjectHandler) ListPage(c *gin.Context) {
	params := services.ParseListParams(c.Request.URL.Query())

	page, err := h.projects.ListPage(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("project listing failed", zap.Error(err))
		page = emptyProjectListPage(params)
	}

	c.JSON(http.StatusOK, page)
}

// Detail handles GET /projects/:slug.
func (h *ProjectHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.projects.Detail(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("project detail failed", zap.String("slug", slug), zap.Error(err))
		responses.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// APIList handles GET /api/projects.
func (h *ProjectHandler) APIList(c *gin.Context) {
	category := c.Query("category")

	projects, err := h.projects.All(c.Request.Context(), category)
	if err != nil {
		responses.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// APIGet handles GET /api/projects/:slug.
func (h *ProjectHandler) APIGet(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.projects.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		responses.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// APIRelated handles GET /api/projects/:slug/related.
func (h *ProjectHandler) APIRelated(c *gin.Context) {
	slug := c.Param("slug")

	related, err := h.projects.Related(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		responses.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, related)
}

func emptyProjectListPage(params services.ListParams) *services.ProjectListPage {
	return &services.ProjectListPage{
		Projects:    []models.ProjectSummary{},
		TotalCount:  0,
		TotalPages:  0,
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		Filters: services.ListingFilters{
			Keyword:  params.Keyword,
			Location: params.Location,
			Category: params.Category,
			Status:   params.Status,
			Sort:     params.Sort,
		},
		FilterOptions: services.ProjectFilterOptions{
			Locations:  []string{},
			Categories: []string{},
			Statuses:   []string{},
		},
	}
}
