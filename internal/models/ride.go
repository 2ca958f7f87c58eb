package models

import "time"

type VehicleType string
type RideStatus string
type GenderPreference string

const (
	VehicleTypeBike VehicleType = "bike"
	VehicleTypeCar  VehicleType = "car"

	RideStatusUpcoming  RideStatus = "upcoming"
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"

	GenderAny    GenderPreference = "any"
	GenderMale   GenderPreference = "male"
	GenderFemale GenderPreference = "female"
)

type Location struct {
	Label string  `json:"label" validate:"required"`
	Lat   float64 `json:"lat" validate:"min=-90,max=90"`
	Lng   float64 `json:"lng" validate:"min=-180,max=180"`
}

type Ride struct {
	ID             string           `json:"id"`
	Driver         *User            `json:"driver"`
	Origin         Location         `json:"origin" validate:"required"`
	Destination    Location         `json:"destination" validate:"required"`
	DepartureTime  time.Time        `json:"departure_time"`
	VehicleType    VehicleType      `json:"vehicle_type"`
	AvailableSeats int              `json:"available_seats"`
	Fare           int              `json:"fare"`
	DistanceKM     float64          `json:"distance_km"`
	DurationMin    int              `json:"duration_min"`
	AllowsGender   GenderPreference `json:"allows_gender,omitempty"`
	RequiresHelmet bool             `json:"requires_helmet"`
	Status         RideStatus       `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}

// IsJoinable reports whether the ride still accepts tagalong requests.
func (r *Ride) IsJoinable() bool {
	return r.Status == RideStatusUpcoming && r.AvailableSeats > 0
}
