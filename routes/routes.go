package routes

import (
	"github.com/sumtl/restaurant-reviews-app/controllers"
	"github.com/sumtl/restaurant-reviews-app/repository"
	"github.com/sumtl/restaurant-reviews-app/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *zap.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"success": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo)
	menuSvc := services.NewMenuItemService(menuRepo)
	reviewSvc := services.NewReviewService(reviewRepo, userRepo, menuRepo)
	userSvc := services.NewUserService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, log)
	menuCtrl := controllers.NewMenuItemController(menuSvc, log)
	reviewCtrl := controllers.NewReviewController(reviewSvc, log)
	userCtrl := controllers.NewUserController(userSvc, log)
	docsCtrl := controllers.NewDocsController()

	api := r.Group("/api")
	{
		api.POST("/auth/login", authCtrl.Login)

		api.GET("/menu-items", menuCtrl.List)
		api.GET("/menu-items/:id", menuCtrl.Detail)

		api.GET("/reviews", reviewCtrl.List)
		api.POST("/reviews", reviewCtrl.Create)
		// routes fixes avant /reviews/:id pour éviter le conflit de paramètre
		api.GET("/reviews/by-menu/:menuItemId", reviewCtrl.ListByMenuItem)
		api.GET("/reviews/by-user", reviewCtrl.ListByUser)
		api.GET("/reviews/:id", reviewCtrl.Detail)
		api.PUT("/reviews/:id", reviewCtrl.Update)
		api.DELETE("/reviews/:id", reviewCtrl.Delete)

		api.GET("/users", userCtrl.List)
		api.GET("/users/profile", userCtrl.GetProfile)
		api.PUT("/users/profile", userCtrl.UpdateProfile)
	}

	// Documentation rendue
	r.GET("/api-docs", docsCtrl.Page)
	r.GET("/api-docs/openapi.json", docsCtrl.Spec)
}
