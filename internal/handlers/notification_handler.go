package handlers

import (
	"errors"

	"tagalong/internal/middleware"
	"tagalong/internal/services"
	"tagalong/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// List returns the caller's notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationService.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notifications retrieved", notifications)
}

// MarkRead flips one notification to read; unknown ids are a no-op.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.notificationService.MarkRead(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Notification marked as read", nil)
}

// MarkAllRead flips every notification to read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	err := h.notificationService.MarkAllRead(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "All notifications marked as read", nil)
}

// UnreadCount returns how many notifications are unread.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Unread count retrieved", gin.H{"unread": count})
}

func (h *NotificationHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotAuthenticated) {
		utils.UnauthorizedResponse(c)
		return
	}
	utils.InternalServerErrorResponse(c)
}
