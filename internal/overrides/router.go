package overrides

import (
	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/middleware"
)

func SetupOverrideRoutes(router *gin.RouterGroup, controller Controller) {
	// Overrides are an admin-only surface: granting one widens what the
	// availability engine will accept for that date.
	admin := router.Group("/admin/overrides")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.POST("", controller.GrantOverride)
		admin.GET("", controller.ListOverrides)
		admin.DELETE("/:dateKey", controller.RevokeOverride)
	}
}
