package routes

import (
	"net/http"
	"time"

	"fieldbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFacilityRoutes registers facility catalog and per-day
// schedule endpoints.
func RegisterFacilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/facilities")
	{
		api.POST("", hb.Facility.Register)
		api.GET("", hb.Facility.List)
		api.GET("/:id", hb.Facility.GetByID)
		api.PATCH("/:id", hb.Facility.Update)
		api.DELETE("/:id", hb.Facility.Deactivate)

		// Day availability and schedule management.
		api.GET("/:id/availability", hb.Schedule.GetDayAvailability)
		api.GET("/:id/schedule", hb.Schedule.GetSchedule)
		api.GET("/:id/schedules", hb.Schedule.ListSchedules)
		api.POST("/:id/schedule", hb.Schedule.CreateSchedule)
		api.PUT("/:id/schedule/slots", hb.Schedule.UpdateSlots)
		api.PUT("/:id/schedule/holiday", hb.Schedule.SetHoliday)
		api.PUT("/:id/schedule/special-hours", hb.Schedule.SetSpecialHours)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.GET("/availability", hb.Booking.CheckAvailability)
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.GET("", hb.Booking.ListBookings)
		bookingGroup.PUT("/:id/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBooking)
	}
}

// RegisterEntryPassRoutes sets up entry token issuance and the gate
// scanner verification endpoint.
func RegisterEntryPassRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	passGroup := r.Group("/api/entry-pass")
	{
		passGroup.POST("/verify", hb.EntryPass.Verify)
		passGroup.POST("/:bookingId", hb.EntryPass.Issue)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Fieldbook"})
	})
}

// RegisterRoutes wires CORS and all route groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterFacilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterEntryPassRoutes(r, hb)
}
