// Package router wires handlers, services and middleware into a Gin engine.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "profilecat/internal/docs" // Import swagger docs
	"profilecat/internal/handlers"
	"profilecat/internal/middleware"
	"profilecat/internal/services"
	"profilecat/internal/validator"
)

// Options configures the engine built by New.
type Options struct {
	CORSOrigin string
	// Swagger mounts the documentation UI at /swagger/.
	Swagger bool
}

// New builds the API engine on top of db.
func New(db *gorm.DB, opts Options) *gin.Engine {
	validator.Register()

	categoryService := services.NewCategoryService(db)
	profileService := services.NewProfileService(db)
	auditService := services.NewAuditService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	profileHandler := handlers.NewProfileHandler(profileService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.CORSOrigin))

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/category")

	categories := api.Group("/categories")
	categories.GET("/", categoryHandler.ListCategories)
	categories.POST("/", categoryHandler.CreateCategory)
	categories.GET("/by_language/", categoryHandler.ListCategoriesByLanguage)
	categories.GET("/:id/", categoryHandler.GetCategory)
	categories.PUT("/:id/", categoryHandler.UpdateCategory)
	categories.PATCH("/:id/", categoryHandler.UpdateCategory)
	categories.DELETE("/:id/", categoryHandler.DeleteCategory)

	profiles := api.Group("/profiles")
	profiles.POST("/", profileHandler.CreateProfile)
	profiles.GET("/:id/", profileHandler.GetProfile)
	profiles.DELETE("/:id/", profileHandler.DeleteProfile)

	return router
}
