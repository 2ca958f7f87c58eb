package routes

import (
	"tagalong/internal/handlers"
	"tagalong/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupNotificationRoutes sets up routes for the notification center
func SetupNotificationRoutes(r *gin.RouterGroup, notificationHandler *handlers.NotificationHandler, jwtSecret string) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthRequired(jwtSecret))
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/unread", notificationHandler.UnreadCount)
		notifications.PUT("/read", notificationHandler.MarkAllRead)
		notifications.PUT("/:id/read", notificationHandler.MarkRead)
	}
}
