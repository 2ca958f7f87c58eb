package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"tagalong/internal/events"
	"tagalong/internal/models"
	"tagalong/internal/store"
	"tagalong/internal/utils"
	"tagalong/pkg/logger"
)

var (
	ErrOwnRide         = errors.New("cannot request your own ride")
	ErrRideUnavailable = errors.New("ride is not accepting requests")
)

type RideService interface {
	Search(ctx context.Context, criteria *RideSearchCriteria) ([]*models.Ride, error)
	Offer(ctx context.Context, userID string, request *OfferRideRequest) (*models.Ride, error)
	GetByID(ctx context.Context, id string) (*models.Ride, error)
	Request(ctx context.Context, userID, rideID string) error
	EstimateFare(distanceKM float64, vehicleType models.VehicleType) int
	SuggestLocations(prefix string) []string
}

type RideSearchCriteria struct {
	Origin      string             `json:"origin" form:"origin"`
	Destination string             `json:"destination" form:"destination"`
	VehicleType models.VehicleType `json:"vehicle_type" form:"vehicle_type"`
	MinSeats    int                `json:"min_seats" form:"min_seats"`
}

type OfferRideRequest struct {
	Origin         models.Location         `json:"origin" validate:"required"`
	Destination    models.Location         `json:"destination" validate:"required"`
	DepartureTime  time.Time               `json:"departure_time" validate:"required"`
	VehicleType    models.VehicleType      `json:"vehicle_type" validate:"required,vehicle_type"`
	AvailableSeats int                     `json:"available_seats" validate:"min=1,max=4"`
	Fare           int                     `json:"fare" validate:"min=0"`
	AllowsGender   models.GenderPreference `json:"allows_gender"`
}

type rideService struct {
	rides  *store.RideStore
	users  *store.UserStore
	bus    *events.Bus
	logger *logger.Logger
}

func NewRideService(rides *store.RideStore, users *store.UserStore, bus *events.Bus, log *logger.Logger) RideService {
	return &rideService{
		rides:  rides,
		users:  users,
		bus:    bus,
		logger: log,
	}
}

// Search runs a linear filter over the ride set: substring match on origin
// and destination labels, optional vehicle type and minimum seats. Only
// upcoming rides are returned.
func (s *rideService) Search(ctx context.Context, criteria *RideSearchCriteria) ([]*models.Ride, error) {
	origin := strings.ToLower(strings.TrimSpace(criteria.Origin))
	destination := strings.ToLower(strings.TrimSpace(criteria.Destination))

	var out []*models.Ride
	for _, r := range s.rides.All() {
		if r.Status != models.RideStatusUpcoming {
			continue
		}
		if origin != "" && !strings.Contains(strings.ToLower(r.Origin.Label), origin) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(r.Destination.Label), destination) {
			continue
		}
		if criteria.VehicleType != "" && r.VehicleType != criteria.VehicleType {
			continue
		}
		if criteria.MinSeats > 0 && r.AvailableSeats < criteria.MinSeats {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Offer publishes a new ride with the current user as driver. Bikes carry one
// passenger and require a helmet; cars seat up to four.
func (s *rideService) Offer(ctx context.Context, userID string, request *OfferRideRequest) (*models.Ride, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	driver, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, err
	}

	seats := request.AvailableSeats
	helmet := false
	if request.VehicleType == models.VehicleTypeBike {
		seats = utils.MaxBikeSeats
		helmet = true
	} else if seats > utils.MaxCarSeats {
		seats = utils.MaxCarSeats
	}

	distance := utils.CalculateDistance(
		request.Origin.Lat, request.Origin.Lng,
		request.Destination.Lat, request.Destination.Lng,
	)

	fare := request.Fare
	if fare == 0 {
		fare = s.EstimateFare(distance, request.VehicleType)
	}

	gender := request.AllowsGender
	if gender == "" {
		gender = models.GenderAny
	}

	ride := &models.Ride{
		ID:             utils.NewID(),
		Driver:         driver,
		Origin:         request.Origin,
		Destination:    request.Destination,
		DepartureTime:  request.DepartureTime,
		VehicleType:    request.VehicleType,
		AvailableSeats: seats,
		Fare:           fare,
		DistanceKM:     math.Round(distance*10) / 10,
		DurationMin:    utils.EstimateETAMinutes(distance, 0),
		AllowsGender:   gender,
		RequiresHelmet: helmet,
		Status:         models.RideStatusUpcoming,
		CreatedAt:      time.Now(),
	}
	s.rides.Insert(ride)

	s.logger.WithUserID(userID).WithRideID(ride.ID).Info("Ride offered")

	return ride, nil
}

func (s *rideService) GetByID(ctx context.Context, id string) (*models.Ride, error) {
	return s.rides.GetByID(id)
}

// Request records a rider's intent to join; the driver learns about it via a
// ride_request notification. Booking confirmation stays with the driver.
func (s *rideService) Request(ctx context.Context, userID, rideID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	rider, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}
	ride, err := s.rides.GetByID(rideID)
	if err != nil {
		return err
	}
	if ride.Driver != nil && ride.Driver.ID == userID {
		return ErrOwnRide
	}
	if !ride.IsJoinable() {
		return ErrRideUnavailable
	}

	s.bus.Publish(events.TopicRideRequested, events.RideRequested{
		RideID:        ride.ID,
		DriverID:      ride.Driver.ID,
		RiderID:       rider.ID,
		RiderName:     rider.Name,
		Destination:   ride.Destination.Label,
		DepartureTime: utils.FormatTimeISO(ride.DepartureTime),
	})

	s.logger.WithUserID(userID).WithRideID(rideID).Info("Ride requested")

	return nil
}

// EstimateFare applies the fixed per-kilometer rate table, floored at the
// vehicle's minimum fare and rounded to the nearest rupee.
func (s *rideService) EstimateFare(distanceKM float64, vehicleType models.VehicleType) int {
	if vehicleType == models.VehicleTypeCar {
		fare := int(math.Round(distanceKM * utils.CarRatePerKM))
		if fare < utils.CarMinFare {
			return utils.CarMinFare
		}
		return fare
	}

	fare := int(math.Round(distanceKM * utils.BikeRatePerKM))
	if fare < utils.BikeMinFare {
		return utils.BikeMinFare
	}
	return fare
}

// SuggestLocations matches the fixed location list case-insensitively.
// Prefixes shorter than two characters yield nothing.
func (s *rideService) SuggestLocations(prefix string) []string {
	query := strings.ToLower(strings.TrimSpace(prefix))
	if len(query) < utils.MinSuggestionChars {
		return nil
	}

	var out []string
	for _, loc := range store.HyderabadLocations {
		if strings.Contains(strings.ToLower(loc), query) {
			out = append(out, loc)
		}
	}
	return out
}
