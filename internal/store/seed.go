package store

import (
	"time"

	"tagalong/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedPassword is the demo credential shared by every seeded account.
const SeedPassword = "tagalong123"

// HyderabadLocations feeds the origin/destination autocomplete.
var HyderabadLocations = []string{
	"Banjara Hills",
	"Jubilee Hills",
	"Hitech City",
	"Gachibowli",
	"Madhapur",
	"Ameerpet",
	"Secunderabad",
	"Kukatpally",
	"Dilsukhnagar",
	"LB Nagar",
	"Uppal",
	"Begumpet",
	"Manikonda",
	"Kondapur",
	"KPHB Colony",
	"Somajiguda",
	"Kothapet",
	"Mehdipatnam",
	"Abids",
	"Charminar",
}

// Seed is the read-only demo dataset the stores boot from.
type Seed struct {
	Users         []*models.User
	Rides         []*models.Ride
	Chats         []*models.Chat
	Notifications []*models.Notification
}

// DefaultSeed builds the demo fixture: five users, five upcoming rides, one
// conversation and a handful of notifications.
func DefaultSeed() *Seed {
	hash, _ := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	password := string(hash)

	users := []*models.User{
		{
			ID:             "u1",
			Name:           "Arjun Reddy",
			Email:          "arjun@tagalong.in",
			Password:       password,
			ProfileImage:   "https://randomuser.me/api/portraits/men/1.jpg",
			Rating:         4.8,
			IsVerified:     true,
			RidesCompleted: 67,
			Status:         models.UserStatusActive,
			DateJoined:     date(2023, 2, 15),
		},
		{
			ID:             "u2",
			Name:           "Priya Sharma",
			Email:          "priya@tagalong.in",
			Password:       password,
			ProfileImage:   "https://randomuser.me/api/portraits/women/2.jpg",
			Rating:         4.9,
			IsVerified:     true,
			RidesCompleted: 132,
			Status:         models.UserStatusActive,
			DateJoined:     date(2022, 11, 30),
		},
		{
			ID:             "u3",
			Name:           "Raj Kumar",
			Email:          "raj@tagalong.in",
			Password:       password,
			ProfileImage:   "https://randomuser.me/api/portraits/men/3.jpg",
			Rating:         4.5,
			IsVerified:     true,
			RidesCompleted: 43,
			Status:         models.UserStatusActive,
			DateJoined:     date(2023, 4, 10),
		},
		{
			ID:             "u4",
			Name:           "Sneha Patel",
			Email:          "sneha@tagalong.in",
			Password:       password,
			ProfileImage:   "https://randomuser.me/api/portraits/women/4.jpg",
			Rating:         4.7,
			IsVerified:     false,
			RidesCompleted: 21,
			Status:         models.UserStatusActive,
			DateJoined:     date(2023, 8, 5),
		},
		{
			ID:             "u5",
			Name:           "Vikram Singh",
			Email:          "vikram@tagalong.in",
			Password:       password,
			ProfileImage:   "https://randomuser.me/api/portraits/men/5.jpg",
			Rating:         4.6,
			IsVerified:     true,
			RidesCompleted: 89,
			Status:         models.UserStatusActive,
			DateJoined:     date(2022, 9, 22),
		},
	}

	tomorrow := time.Now().AddDate(0, 0, 1)

	rides := []*models.Ride{
		{
			ID:             "r1",
			Driver:         users[0],
			Origin:         models.Location{Label: "Banjara Hills", Lat: 17.4138, Lng: 78.4335},
			Destination:    models.Location{Label: "Hitech City", Lat: 17.4435, Lng: 78.3772},
			DepartureTime:  at(tomorrow, 9, 30),
			VehicleType:    models.VehicleTypeBike,
			AvailableSeats: 1,
			Fare:           60,
			DistanceKM:     8.2,
			DurationMin:    22,
			AllowsGender:   models.GenderAny,
			RequiresHelmet: true,
			Status:         models.RideStatusUpcoming,
		},
		{
			ID:             "r2",
			Driver:         users[1],
			Origin:         models.Location{Label: "Gachibowli", Lat: 17.4401, Lng: 78.3489},
			Destination:    models.Location{Label: "Jubilee Hills", Lat: 17.4278, Lng: 78.4170},
			DepartureTime:  at(tomorrow, 18, 0),
			VehicleType:    models.VehicleTypeCar,
			AvailableSeats: 3,
			Fare:           120,
			DistanceKM:     7.5,
			DurationMin:    25,
			AllowsGender:   models.GenderAny,
			Status:         models.RideStatusUpcoming,
		},
		{
			ID:             "r3",
			Driver:         users[2],
			Origin:         models.Location{Label: "Ameerpet", Lat: 17.4374, Lng: 78.4482},
			Destination:    models.Location{Label: "Madhapur", Lat: 17.4478, Lng: 78.3916},
			DepartureTime:  at(tomorrow, 10, 15),
			VehicleType:    models.VehicleTypeBike,
			AvailableSeats: 1,
			Fare:           50,
			DistanceKM:     6.3,
			DurationMin:    18,
			AllowsGender:   models.GenderMale,
			RequiresHelmet: true,
			Status:         models.RideStatusUpcoming,
		},
		{
			ID:             "r4",
			Driver:         users[3],
			Origin:         models.Location{Label: "Kukatpally", Lat: 17.4849, Lng: 78.4138},
			Destination:    models.Location{Label: "Secunderabad", Lat: 17.4399, Lng: 78.4983},
			DepartureTime:  at(tomorrow, 17, 0),
			VehicleType:    models.VehicleTypeCar,
			AvailableSeats: 2,
			Fare:           150,
			DistanceKM:     12.1,
			DurationMin:    35,
			AllowsGender:   models.GenderFemale,
			Status:         models.RideStatusUpcoming,
		},
		{
			ID:             "r5",
			Driver:         users[4],
			Origin:         models.Location{Label: "Dilsukhnagar", Lat: 17.3684, Lng: 78.5247},
			Destination:    models.Location{Label: "LB Nagar", Lat: 17.3457, Lng: 78.5522},
			DepartureTime:  at(tomorrow, 8, 45),
			VehicleType:    models.VehicleTypeBike,
			AvailableSeats: 1,
			Fare:           40,
			DistanceKM:     4.8,
			DurationMin:    15,
			AllowsGender:   models.GenderAny,
			RequiresHelmet: true,
			Status:         models.RideStatusUpcoming,
		},
	}

	yesterday := time.Now().AddDate(0, 0, -1)

	chats := []*models.Chat{
		{
			ID:           "c1",
			RideID:       "r1",
			Participants: []*models.User{users[0], users[1]},
			Messages: []*models.Message{
				{
					ID:        "m1",
					ChatID:    "c1",
					SenderID:  "u1",
					Text:      "Hi, I am heading to Hitech City. Would you like to join?",
					IsRead:    true,
					Timestamp: at(yesterday, 15, 30),
				},
				{
					ID:        "m2",
					ChatID:    "c1",
					SenderID:  "u2",
					Text:      "Yes, that would be great. What time are you leaving?",
					IsRead:    true,
					Timestamp: at(yesterday, 15, 32),
				},
				{
					ID:        "m3",
					ChatID:    "c1",
					SenderID:  "u1",
					Text:      "I plan to leave at 9:30 AM tomorrow. Is that okay?",
					IsRead:    true,
					Timestamp: at(yesterday, 15, 33),
				},
				{
					ID:        "m4",
					ChatID:    "c1",
					SenderID:  "u2",
					Text:      "Perfect. Where should I wait for you?",
					IsRead:    false,
					Timestamp: at(yesterday, 15, 35),
				},
			},
			LastUpdated: at(yesterday, 15, 35),
			CreatedAt:   at(yesterday, 15, 30),
		},
	}

	notifications := []*models.Notification{
		{
			ID:        "n1",
			UserID:    "u1",
			Type:      models.NotificationTypeRideRequest,
			Title:     "New Ride Request",
			Message:   "Priya Sharma has requested to join your ride to Hitech City tomorrow.",
			IsRead:    false,
			RelatedID: "r1",
			ActionURL: "/ride/r1",
			Timestamp: time.Now().Add(-30 * time.Minute),
		},
		{
			ID:        "n2",
			UserID:    "u1",
			Type:      models.NotificationTypeChatMessage,
			Title:     "New Message",
			Message:   "You have a new message from Raj Kumar.",
			IsRead:    true,
			RelatedID: "c2",
			ActionURL: "/chat",
			Timestamp: time.Now().Add(-2 * time.Hour),
		},
		{
			ID:        "n3",
			UserID:    "u1",
			Type:      models.NotificationTypeRideUpdate,
			Title:     "Ride Update",
			Message:   "Your upcoming ride to Jubilee Hills has been confirmed.",
			IsRead:    false,
			RelatedID: "r2",
			ActionURL: "/ride/r2",
			Timestamp: time.Now().Add(-5 * time.Hour),
		},
	}

	return &Seed{
		Users:         users,
		Rides:         rides,
		Chats:         chats,
		Notifications: notifications,
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
}
