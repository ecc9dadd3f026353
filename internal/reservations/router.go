package reservations

import (
	"github.com/gin-gonic/gin"

	"github.com/Bovice22/axequacks-app-sub000/internal/shared/middleware"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - the guest checkout flow
	bookings := router.Group("/bookings")
	{
		bookings.POST("/quote", controller.Quote)
		bookings.POST("/holds", controller.CreateHold)
		bookings.DELETE("/holds/:holdId", controller.ReleaseHold)
		bookings.POST("/confirm", controller.Confirm)
		bookings.GET("/:ref", controller.GetBooking)
		bookings.POST("/:ref/cancel", controller.Cancel)
	}

	// Admin routes - daily roster
	admin := router.Group("/admin/bookings")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/date/:dateKey", controller.ListByDate)
	}
}
