package availability

import (
	"github.com/gin-gonic/gin"
)

func SetupAvailabilityRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - guests scan before booking
	availability := router.Group("/availability")
	{
		availability.POST("/search", controller.Search)
		availability.POST("/needs", controller.ComputeNeeds)
	}
}
