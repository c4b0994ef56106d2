package routes

import (
	"realestate-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type SiteRoutes struct {
	handler *handlers.SiteHandler
}

func NewSiteRoutes(handler *handlers.SiteHandler) *SiteRoutes {
	return &SiteRoutes{handler: handler}
}

func (r *SiteRoutes) RegisterPages(router *gin.Engine) {
	router.GET("/agents", r.handler.Agents)
	router.POST("/contact", r.handler.Contact)
}

func (r *SiteRoutes) RegisterAPI(api *gin.RouterGroup) {
	api.GET("/partners", r.handler.Partners)
	api.GET("/testimonials", r.handler.Testimonials)
}
