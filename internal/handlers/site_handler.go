package handlers

import (
	"context"
	"net/http"

	"realestate-backend/internal/models"
	"realestate-backend/internal/responses"
	"realestate-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SiteReader interface {
	Agents(ctx context.Context) ([]models.Agent, error)
	Partners(ctx context.Context) ([]models.Partner, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	SubmitEnquiry(ctx context.Context, enquiry services.ContactEnquiry) error
}

type SiteHandler struct {
	site   SiteReader
	logger *zap.Logger
}

func NewSiteHandler(site SiteReader, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{site: site, logger: logger}
}

// Agents handles GET /agents. A failed fetch renders as an empty directory,
// same as the page did.
func (h *SiteHandler) Agents(c *gin.Context) {
	agents, err := h.site.Agents(c.Request.Context())
	if err != nil {
		h.logger.Error("agents fetch failed", zap.Error(err))
		agents = []models.Agent{}
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// Partners handles GET /api/partners.
func (h *SiteHandler) Partners(c *gin.Context) {
	partners, err := h.site.Partners(c.Request.Context())
	if err != nil {
		responses.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, partners)
}

// Testimonials handles GET /api/testimonials.
func (h *SiteHandler) Testimonials(c *gin.Context) {
	testimonials, err := h.site.Testimonials(c.Request.Context())
	if err != nil {
		responses.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Contact handles POST /contact. Enquiries are acknowledged and logged, not
// persisted.
func (h *SiteHandler) Contact(c *gin.Context) {
	var enquiry services.ContactEnquiry
	if err := c.ShouldBindJSON(&enquiry); err != nil {
		responses.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.site.SubmitEnquiry(c.Request.Context(), enquiry); err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
