package services

import (
	"context"
	"testing"
	"time"

	"tagalong/internal/events"
	"tagalong/internal/models"
	"tagalong/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rideFixture struct {
	rides      RideService
	rideStore  *store.RideStore
	notifStore *store.NotificationStore
	toaster    *fakeToaster
}

func newRideFixture(t *testing.T) *rideFixture {
	t.Helper()

	driver := &models.User{ID: "u1", Name: "Arjun Reddy"}
	rider := &models.User{ID: "u2", Name: "Priya Sharma"}
	users := store.NewUserStore([]*models.User{driver, rider})

	departure := time.Now().Add(24 * time.Hour)
	rideStore := store.NewRideStore([]*models.Ride{
		{
			ID:             "r1",
			Driver:         driver,
			Origin:         models.Location{Label: "Gachibowli", Lat: 17.4401, Lng: 78.3489},
			Destination:    models.Location{Label: "Hitech City", Lat: 17.4483, Lng: 78.3915},
			DepartureTime:  departure,
			VehicleType:    models.VehicleTypeCar,
			AvailableSeats: 3,
			Fare:           120,
			Status:         models.RideStatusUpcoming,
		},
		{
			ID:             "r2",
			Driver:         driver,
			Origin:         models.Location{Label: "Madhapur", Lat: 17.4478, Lng: 78.3916},
			Destination:    models.Location{Label: "Banjara Hills", Lat: 17.4108, Lng: 78.4294},
			DepartureTime:  departure,
			VehicleType:    models.VehicleTypeBike,
			AvailableSeats: 1,
			Fare:           45,
			Status:         models.RideStatusUpcoming,
		},
		{
			ID:             "r3",
			Driver:         driver,
			Origin:         models.Location{Label: "Gachibowli", Lat: 17.4401, Lng: 78.3489},
			Destination:    models.Location{Label: "Secunderabad", Lat: 17.4399, Lng: 78.4983},
			DepartureTime:  departure.Add(-48 * time.Hour),
			VehicleType:    models.VehicleTypeCar,
			AvailableSeats: 2,
			Fare:           200,
			Status:         models.RideStatusCompleted,
		},
	})

	notifStore := store.NewNotificationStore(nil)
	bus := events.NewBus()
	toaster := &fakeToaster{}
	log := testLogger(t)

	NewNotificationService(notifStore, bus, toaster, log)

	return &rideFixture{
		rides:      NewRideService(rideStore, users, bus, log),
		rideStore:  rideStore,
		notifStore: notifStore,
		toaster:    toaster,
	}
}

func TestSearchFilters(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		criteria RideSearchCriteria
		wantIDs  []string
	}{
		{"no filters returns upcoming only", RideSearchCriteria{}, []string{"r1", "r2"}},
		{"origin substring case-insensitive", RideSearchCriteria{Origin: "gachi"}, []string{"r1"}},
		{"destination substring", RideSearchCriteria{Destination: "banjara"}, []string{"r2"}},
		{"vehicle type", RideSearchCriteria{VehicleType: models.VehicleTypeBike}, []string{"r2"}},
		{"min seats", RideSearchCriteria{MinSeats: 2}, []string{"r1"}},
		{"no match", RideSearchCriteria{Origin: "airport"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.rides.Search(ctx, &tt.criteria)
			require.NoError(t, err)
			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestEstimateFare(t *testing.T) {
	f := newRideFixture(t)

	tests := []struct {
		name     string
		distance float64
		vehicle  models.VehicleType
		want     int
	}{
		{"bike per km", 10, models.VehicleTypeBike, 70},
		{"bike minimum floor", 2, models.VehicleTypeBike, 30},
		{"bike rounds", 8.2, models.VehicleTypeBike, 57},
		{"car per km", 10, models.VehicleTypeCar, 140},
		{"car minimum floor", 3, models.VehicleTypeCar, 60},
		{"car at boundary", 4.3, models.VehicleTypeCar, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.rides.EstimateFare(tt.distance, tt.vehicle))
		})
	}
}

func TestOfferBikeForcesSingleSeatAndHelmet(t *testing.T) {
	f := newRideFixture(t)

	ride, err := f.rides.Offer(context.Background(), "u1", &OfferRideRequest{
		Origin:         models.Location{Label: "Kukatpally", Lat: 17.4849, Lng: 78.4138},
		Destination:    models.Location{Label: "Ameerpet", Lat: 17.4375, Lng: 78.4483},
		DepartureTime:  time.Now().Add(2 * time.Hour),
		VehicleType:    models.VehicleTypeBike,
		AvailableSeats: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, ride.AvailableSeats)
	assert.True(t, ride.RequiresHelmet)
	assert.Equal(t, models.RideStatusUpcoming, ride.Status)
	assert.Equal(t, models.GenderAny, ride.AllowsGender)
	assert.Positive(t, ride.Fare)

	// The offered ride shows up in search immediately.
	got, err := f.rides.Search(context.Background(), &RideSearchCriteria{Origin: "kukatpally"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ride.ID, got[0].ID)
}

func TestOfferCarCapsSeats(t *testing.T) {
	f := newRideFixture(t)

	ride, err := f.rides.Offer(context.Background(), "u1", &OfferRideRequest{
		Origin:         models.Location{Label: "Kondapur", Lat: 17.4622, Lng: 78.3568},
		Destination:    models.Location{Label: "Begumpet", Lat: 17.4447, Lng: 78.4664},
		DepartureTime:  time.Now().Add(3 * time.Hour),
		VehicleType:    models.VehicleTypeCar,
		AvailableSeats: 4,
		Fare:           150,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, ride.AvailableSeats)
	assert.False(t, ride.RequiresHelmet)
	assert.Equal(t, 150, ride.Fare)
}

func TestOfferRequiresAuthentication(t *testing.T) {
	f := newRideFixture(t)

	_, err := f.rides.Offer(context.Background(), "", &OfferRideRequest{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRequestNotifiesDriver(t *testing.T) {
	f := newRideFixture(t)

	err := f.rides.Request(context.Background(), "u2", "r1")
	require.NoError(t, err)

	list := f.notifStore.ListForUser("u1")
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeRideRequest, list[0].Type)
	assert.Equal(t, "New Ride Request", list[0].Title)
	assert.Contains(t, list[0].Message, "Priya Sharma")
	assert.Contains(t, list[0].Message, "Hitech City")
	assert.Equal(t, "r1", list[0].RelatedID)
	assert.Equal(t, "/ride/r1", list[0].ActionURL)

	require.Len(t, f.toaster.Calls(), 1)
}

func TestRequestRejectsOwnRide(t *testing.T) {
	f := newRideFixture(t)

	err := f.rides.Request(context.Background(), "u1", "r1")
	assert.ErrorIs(t, err, ErrOwnRide)
	assert.Empty(t, f.notifStore.ListForUser("u1"))
}

func TestRequestRejectsUnavailableRide(t *testing.T) {
	f := newRideFixture(t)
	ctx := context.Background()

	// r3 already completed.
	err := f.rides.Request(ctx, "u2", "r3")
	assert.ErrorIs(t, err, ErrRideUnavailable)

	// An upcoming ride with no free seats is just as closed.
	f.rideStore.Insert(&models.Ride{
		ID:             "r4",
		Driver:         &models.User{ID: "u1", Name: "Arjun Reddy"},
		Origin:         models.Location{Label: "Uppal", Lat: 17.4058, Lng: 78.5591},
		Destination:    models.Location{Label: "Abids", Lat: 17.3891, Lng: 78.4742},
		DepartureTime:  time.Now().Add(6 * time.Hour),
		VehicleType:    models.VehicleTypeCar,
		AvailableSeats: 0,
		Status:         models.RideStatusUpcoming,
	})
	err = f.rides.Request(ctx, "u2", "r4")
	assert.ErrorIs(t, err, ErrRideUnavailable)

	assert.Empty(t, f.notifStore.ListForUser("u1"))
}

func TestRequestUnknownRide(t *testing.T) {
	f := newRideFixture(t)

	err := f.rides.Request(context.Background(), "u2", "r99")
	assert.ErrorIs(t, err, store.ErrRideNotFound)
}

func TestSuggestLocations(t *testing.T) {
	f := newRideFixture(t)

	assert.Nil(t, f.rides.SuggestLocations("g"))
	assert.Nil(t, f.rides.SuggestLocations(" "))

	got := f.rides.SuggestLocations("gach")
	require.NotEmpty(t, got)
	assert.Contains(t, got, "Gachibowli")

	// Case does not matter.
	assert.Equal(t, got, f.rides.SuggestLocations("GACH"))
}
