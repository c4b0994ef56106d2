package routes

import (
	"net/http"

	"realestate-backend/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(router *gin.Engine, projectHandler *handlers.ProjectHandler, propertyHandler *handlers.PropertyHandler, siteHandler *handlers.SiteHandler) {
	api := router.Group("/api")

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterPages(router)
	projectRoutes.RegisterAPI(api)

	propertyRoutes := NewPropertyRoutes(propertyHandler)
	propertyRoutes.RegisterPages(router)

	siteRoutes := NewSiteRoutes(siteHandler)
	siteRoutes.RegisterPages(router)
	siteRoutes.RegisterAPI(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
