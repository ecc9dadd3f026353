package pricing

import (
	"github.com/gin-gonic/gin"
)

func SetupPricingRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - guests quote before checkout
	pricing := router.Group("/pricing")
	{
		pricing.POST("/quote", controller.Quote)
		pricing.GET("/rates", controller.GetRates)
	}
}
