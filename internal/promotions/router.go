package promotions

import (
	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/middleware"
)

func SetupPromotionRoutes(router *gin.RouterGroup, controller Controller) {
	// Public route - guests redeem at checkout
	public := router.Group("/promotions")
	{
		public.POST("/apply", controller.Apply)
	}

	// Admin routes - code management
	admin := router.Group("/admin/promotions")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.Create)
		admin.GET("", controller.List)
		admin.PATCH("/:code/deactivate", controller.Deactivate)
		admin.DELETE("/:code", controller.Delete)
	}
}
