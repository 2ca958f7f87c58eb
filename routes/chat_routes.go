package routes

import (
	"tagalong/internal/handlers"
	"tagalong/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupChatRoutes sets up routes for chat functionality
func SetupChatRoutes(r *gin.RouterGroup, chatHandler *handlers.ChatHandler, jwtSecret string) {
	chats := r.Group("/chats")
	chats.Use(middleware.AuthRequired(jwtSecret))
	{
		chats.GET("", chatHandler.ListChats)
		chats.POST("", chatHandler.CreateChat)
		chats.GET("/unread", chatHandler.TotalUnread)

		chats.GET("/:id", chatHandler.GetChat)
		chats.POST("/:id/messages", chatHandler.SendMessage)
		chats.GET("/:id/unread", chatHandler.UnreadCount)
	}
}
