package services

import (
	"context"
	"fmt"

	"tagalong/internal/events"
	"tagalong/internal/models"
	"tagalong/internal/store"
	"tagalong/pkg/logger"
)

// Toaster is the display collaborator: it receives {title, message} pairs for
// freshly added notifications. Delivery is fire-and-forget; a toast that never
// renders is not an error.
type Toaster interface {
	PushToUser(userID, title, message string, data map[string]interface{})
}

type NotificationService interface {
	List(ctx context.Context, userID string) ([]*models.Notification, error)
	Add(ctx context.Context, input *NotificationInput) (*models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

// NotificationInput is a notification without id and timestamp; the store
// assigns both on insert.
type NotificationInput struct {
	UserID    string                  `json:"user_id" validate:"required"`
	Type      models.NotificationType `json:"type" validate:"required"`
	Title     string                  `json:"title" validate:"required"`
	Message   string                  `json:"message" validate:"required"`
	RelatedID string                  `json:"related_id"`
	ActionURL string                  `json:"action_url"`
}

type notificationService struct {
	notifications *store.NotificationStore
	toaster       Toaster
	logger        *logger.Logger
}

func NewNotificationService(notifications *store.NotificationStore, bus *events.Bus, toaster Toaster, log *logger.Logger) NotificationService {
	s := &notificationService{
		notifications: notifications,
		toaster:       toaster,
		logger:        log,
	}

	bus.Subscribe(events.TopicMessageReceived, s.onMessageReceived)
	bus.Subscribe(events.TopicRideRequested, s.onRideRequested)

	return s
}

func (s *notificationService) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.notifications.ListForUser(userID), nil
}

func (s *notificationService) Add(ctx context.Context, input *NotificationInput) (*models.Notification, error) {
	if !models.ValidNotificationType(input.Type) {
		return nil, fmt.Errorf("unknown notification type: %s", input.Type)
	}

	n := s.notifications.Add(&models.Notification{
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		RelatedID: input.RelatedID,
		ActionURL: input.ActionURL,
	})

	// Signal the display collaborator. Failures stay invisible to callers.
	if s.toaster != nil {
		s.toaster.PushToUser(n.UserID, n.Title, n.Message, map[string]interface{}{
			"notification_id": n.ID,
			"type":            string(n.Type),
			"action_url":      n.ActionURL,
		})
	}

	s.logger.WithUserID(n.UserID).WithField("notification_type", string(n.Type)).Debug("Notification added")

	return n, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	s.notifications.MarkRead(userID, id)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	s.notifications.MarkAllRead(userID)
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrNotAuthenticated
	}
	return s.notifications.UnreadCount(userID), nil
}

func (s *notificationService) onMessageReceived(event interface{}) {
	msg, ok := event.(events.MessageReceived)
	if !ok {
		return
	}

	_, err := s.Add(context.Background(), &NotificationInput{
		UserID:    msg.RecipientID,
		Type:      models.NotificationTypeChatMessage,
		Title:     "New Message",
		Message:   fmt.Sprintf("%s sent you a message: \"%s\"", msg.SenderName, msg.Text),
		RelatedID: msg.ChatID,
		ActionURL: "/chat",
	})
	if err != nil {
		s.logger.WithError(err).Warn("Failed to record chat notification")
	}
}

func (s *notificationService) onRideRequested(event interface{}) {
	req, ok := event.(events.RideRequested)
	if !ok {
		return
	}

	_, err := s.Add(context.Background(), &NotificationInput{
		UserID:    req.DriverID,
		Type:      models.NotificationTypeRideRequest,
		Title:     "New Ride Request",
		Message:   fmt.Sprintf("%s has requested to join your ride to %s.", req.RiderName, req.Destination),
		RelatedID: req.RideID,
		ActionURL: "/ride/" + req.RideID,
	})
	if err != nil {
		s.logger.WithError(err).Warn("Failed to record ride request notification")
	}
}
