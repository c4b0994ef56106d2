package routes

import (
	"realestate-backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ProjectRoutes struct {
	handler *handlers.ProjectHandler
}

func NewProjectRoutes(handler *handlers.ProjectHandler) *ProjectRoutes {
	return &ProjectRoutes{handler: handler}
}

// RegisterPages binds the server-rendered listing and detail routes.
func (r *ProjectRoutes) RegisterPages(router *gin.Engine) {
	projects := router.Group("/projects")
	{
		projects.GET("", r.handler.ListPage)
		projects.GET("/:slug", r.handler.Detail)
	}
}

// RegisterAPI binds the JSON proxy routes under /api.
func (r *ProjectRoutes) RegisterAPI(api *gin.RouterGroup) {
	projects := api.Group("/projects")
	{
		projects.GET("", r.handler.APIList)
		projects.GET("/:slug", r.handler.APIGet)
		projects.GET("/:slug/related", r.handler.APIRelated)
	}
}
