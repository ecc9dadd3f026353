package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/middleware"
)

func SetupCatalogRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - guests browse capacity and hours
	public := router.Group("/catalog")
	{
		public.GET("/resources", controller.ListResources)
		public.GET("/capacity", controller.GetCapacity)
		public.GET("/window/:dateKey", controller.GetWindow)
	}

	// Admin routes - resource management
	admin := router.Group("/admin/catalog")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("/resources", controller.CreateResource)
		admin.PUT("/resources/:id", controller.UpdateResource)
		admin.DELETE("/resources/:id", controller.DeleteResource)
	}
}
