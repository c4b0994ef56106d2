package routes

import (
	"realestate-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type PropertyRoutes struct {
	handler *handlers.PropertyHandler
}

func NewPropertyRoutes(handler *handlers.PropertyHandler) *PropertyRoutes {
	return &PropertyRoutes{handler: handler}
}

func (r *PropertyRoutes) RegisterPages(router *gin.Engine) {
	properties := router.Group("/properties")
	{
		properties.GET("", r.handler.ListPage)
		properties.GET("/:slug", r.handler.Detail)
	}
}
