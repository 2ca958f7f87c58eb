package services

import (
	"context"
	"testing"

	"tagalong/internal/events"
	"tagalong/internal/models"
	"tagalong/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture(t *testing.T) (NotificationService, *fakeToaster) {
	t.Helper()
	toaster := &fakeToaster{}
	svc := NewNotificationService(store.NewNotificationStore(nil), events.NewBus(), toaster, testLogger(t))
	return svc, toaster
}

func TestAddRejectsUnknownType(t *testing.T) {
	svc, toaster := newNotificationFixture(t)

	_, err := svc.Add(context.Background(), &NotificationInput{
		UserID:  "u1",
		Type:    "carrier_pigeon",
		Title:   "Nope",
		Message: "never stored",
	})
	require.Error(t, err)
	assert.Empty(t, toaster.Calls())
}

func TestAddStoresAndToasts(t *testing.T) {
	svc, toaster := newNotificationFixture(t)
	ctx := context.Background()

	n, err := svc.Add(ctx, &NotificationInput{
		UserID:    "u1",
		Type:      models.NotificationTypeRideUpdate,
		Title:     "Ride Update",
		Message:   "Departure moved to 8:30 AM",
		RelatedID: "r1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.IsRead)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, n.ID, list[0].ID)

	calls := toaster.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Ride Update", calls[0].Title)
	assert.Equal(t, "Departure moved to 8:30 AM", calls[0].Message)
}

func TestNotificationReadLifecycle(t *testing.T) {
	svc, _ := newNotificationFixture(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, &NotificationInput{
		UserID: "u1", Type: models.NotificationTypeSystem, Title: "a", Message: "a",
	})
	require.NoError(t, err)
	_, err = svc.Add(ctx, &NotificationInput{
		UserID: "u1", Type: models.NotificationTypeSystem, Title: "b", Message: "b",
	})
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, svc.MarkRead(ctx, "u1", first.ID))
	count, _ = svc.UnreadCount(ctx, "u1")
	assert.Equal(t, 1, count)

	// Unknown id leaves the count alone.
	require.NoError(t, svc.MarkRead(ctx, "u1", "nope"))
	count, _ = svc.UnreadCount(ctx, "u1")
	assert.Equal(t, 1, count)

	require.NoError(t, svc.MarkAllRead(ctx, "u1"))
	count, _ = svc.UnreadCount(ctx, "u1")
	assert.Equal(t, 0, count)
}

func TestNotificationEndpointsRequireAuthentication(t *testing.T) {
	svc, _ := newNotificationFixture(t)
	ctx := context.Background()

	_, err := svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, svc.MarkRead(ctx, "", "n1"), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.MarkAllRead(ctx, ""), ErrNotAuthenticated)
	_, err = svc.UnreadCount(ctx, "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
