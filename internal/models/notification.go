package models

import "time"

type NotificationType string

const (
	NotificationTypeRideRequest NotificationType = "ride_request"
	NotificationTypeChatMessage NotificationType = "chat_message"
	NotificationTypeRideUpdate  NotificationType = "ride_update"
	NotificationTypeSystem      NotificationType = "system"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type" validate:"required"`
	Title     string           `json:"title" validate:"required"`
	Message   string           `json:"message" validate:"required"`
	IsRead    bool             `json:"is_read"`
	RelatedID string           `json:"related_id,omitempty"`
	ActionURL string           `json:"action_url,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// ValidNotificationType reports whether t belongs to the closed category set.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationTypeRideRequest, NotificationTypeChatMessage,
		NotificationTypeRideUpdate, NotificationTypeSystem:
		return true
	}
	return false
}
