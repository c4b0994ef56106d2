package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"realestate-backend/internal/database"
	"realestate-backend/internal/handlers"
	"realestate-backend/internal/middlewares"
	"realestate-backend/internal/repositories"
	"realestate-backend/internal/routes"
	"realestate-backend/internal/services"
)

func NewServer(logger *zap.Logger) *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	pool, err := database.Connect()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("database connection pool established")

	// Dependency injection
	projectRepo := repositories.NewProjectRepository(pool, logger)
	assetsRepo := repositories.NewProjectAssetsRepository(pool, logger)
	propertyRepo := repositories.NewPropertyRepository(pool, logger)
	agentRepo := repositories.NewAgentRepository(pool, logger)
	siteRepo := repositories.NewSiteRepository(pool, logger)

	projectService := services.NewProjectService(projectRepo, assetsRepo, logger)
	propertyService := services.NewPropertyService(propertyRepo, logger)
	siteService := services.NewSiteService(agentRepo, siteRepo, logger)

	projectHandler := handlers.NewProjectHandler(projectService, logger)
	propertyHandler := handlers.NewPropertyHandler(propertyService, logger)
	siteHandler := handlers.NewSiteHandler(siteService, logger)

	if os.Getenv("ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(logger))
	router.Use(middlewares.Metrics())

	// Read-only public API; allow any origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	routes.RegisterRoutes(router, projectHandler, propertyHandler, siteHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
