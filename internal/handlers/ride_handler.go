package handlers

import (
	"errors"
	"strconv"

	"tagalong/internal/middleware"
	"tagalong/internal/models"
	"tagalong/internal/services"
	"tagalong/internal/store"
	"tagalong/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RideHandler struct {
	rideService services.RideService
}

func NewRideHandler(rideService services.RideService) *RideHandler {
	return &RideHandler{
		rideService: rideService,
	}
}

// Search filters the available rides by origin, destination, vehicle type
// and minimum free seats.
func (h *RideHandler) Search(c *gin.Context) {
	var criteria services.RideSearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.BadRequestResponse(c, "Invalid search criteria: "+err.Error())
		return
	}

	rides, err := h.rideService.Search(c.Request.Context(), &criteria)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Rides retrieved", rides)
}

// Offer publishes a new ride driven by the caller.
func (h *RideHandler) Offer(c *gin.Context) {
	var request services.OfferRideRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.Offer(c.Request.Context(), middleware.UserID(c), &request)
	if err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			utils.ValidationErrorResponse(c, utils.ValidationErrors(err))
			return
		}
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ride offered successfully", ride)
}

// GetRide returns one ride with driver details.
func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride retrieved", ride)
}

// RequestRide registers the caller's interest in joining a ride.
func (h *RideHandler) RequestRide(c *gin.Context) {
	err := h.rideService.Request(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrOwnRide) {
			utils.BadRequestResponse(c, "You cannot request your own ride")
			return
		}
		if errors.Is(err, services.ErrRideUnavailable) {
			utils.BadRequestResponse(c, "This ride is no longer accepting requests")
			return
		}
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride requested; the driver has been notified", nil)
}

// EstimateFare applies the rate table to a distance and vehicle type.
func (h *RideHandler) EstimateFare(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Query("distance_km"), 64)
	if err != nil || distance < 0 {
		utils.BadRequestResponse(c, "distance_km must be a non-negative number")
		return
	}

	vehicleType := models.VehicleType(c.DefaultQuery("vehicle_type", string(models.VehicleTypeBike)))
	if vehicleType != models.VehicleTypeBike && vehicleType != models.VehicleTypeCar {
		utils.BadRequestResponse(c, "vehicle_type must be bike or car")
		return
	}

	fare := h.rideService.EstimateFare(distance, vehicleType)

	utils.SuccessResponse(c, "Fare estimated", gin.H{
		"distance_km":  distance,
		"vehicle_type": vehicleType,
		"fare":         fare,
		"currency":     utils.DefaultCurrency,
	})
}

// SuggestLocations autocompletes origin/destination labels.
func (h *RideHandler) SuggestLocations(c *gin.Context) {
	suggestions := h.rideService.SuggestLocations(c.Query("q"))
	utils.SuccessResponse(c, "Suggestions retrieved", suggestions)
}

func (h *RideHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		utils.UnauthorizedResponse(c)
	case errors.Is(err, store.ErrRideNotFound):
		utils.NotFoundResponse(c, "Ride")
	case errors.Is(err, store.ErrUserNotFound):
		utils.NotFoundResponse(c, "User")
	default:
		utils.InternalServerErrorResponse(c)
	}
}
