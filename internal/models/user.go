package models

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name" validate:"required,min=2,max=60"`
	Email          string     `json:"email,omitempty" validate:"omitempty,email"`
	Password       string     `json:"-"`
	ProfileImage   string     `json:"profile_image,omitempty"`
	Rating         float64    `json:"rating" validate:"min=0,max=5"`
	IsVerified     bool       `json:"is_verified"`
	RidesCompleted int        `json:"rides_completed"`
	Status         UserStatus `json:"status"`
	DateJoined     time.Time  `json:"date_joined"`
}

// PublicProfile strips credentials and contact details for profile pages.
type PublicProfile struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	Rating         float64   `json:"rating"`
	IsVerified     bool      `json:"is_verified"`
	RidesCompleted int       `json:"rides_completed"`
	DateJoined     time.Time `json:"date_joined"`
}

func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		ProfileImage:   u.ProfileImage,
		Rating:         u.Rating,
		IsVerified:     u.IsVerified,
		RidesCompleted: u.RidesCompleted,
		DateJoined:     u.DateJoined,
	}
}
