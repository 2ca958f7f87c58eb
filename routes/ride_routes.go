package routes

import (
	"tagalong/internal/handlers"
	"tagalong/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRideRoutes sets up routes for ride search and offering
func SetupRideRoutes(r *gin.RouterGroup, rideHandler *handlers.RideHandler, jwtSecret string) {
	rides := r.Group("/rides")
	{
		// Browsing is open; offering and requesting need a signed-in user.
		rides.GET("", rideHandler.Search)
		rides.GET("/fare", rideHandler.EstimateFare)
		rides.GET("/locations", rideHandler.SuggestLocations)
		rides.GET("/:id", rideHandler.GetRide)

		protected := rides.Group("")
		protected.Use(middleware.AuthRequired(jwtSecret))
		{
			protected.POST("", rideHandler.Offer)
			protected.POST("/:id/request", rideHandler.RequestRide)
		}
	}
}
