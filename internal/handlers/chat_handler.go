package handlers

import (
	"errors"

	"tagalong/internal/middleware"
	"tagalong/internal/services"
	"tagalong/internal/store"
	"tagalong/internal/utils"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

type createChatRequest struct {
	UserID string `json:"user_id" binding:"required"`
	RideID string `json:"ride_id" binding:"required"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// ListChats returns the caller's conversations, most recently updated first.
func (h *ChatHandler) ListChats(c *gin.Context) {
	chats, err := h.chatService.ListChats(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.UnauthorizedResponse(c)
		return
	}

	utils.SuccessResponse(c, "Chats retrieved", chats)
}

// GetChat opens a conversation; inbound unread messages are marked read.
func (h *ChatHandler) GetChat(c *gin.Context) {
	chat, err := h.chatService.SelectChat(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Chat retrieved", chat)
}

// CreateChat finds or creates the conversation with another user about a ride.
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var request createChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	chat, err := h.chatService.FindOrCreateChat(c.Request.Context(), middleware.UserID(c), request.UserID, request.RideID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Chat ready", chat)
}

// SendMessage appends a message; whitespace-only text is accepted and ignored.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var request sendMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	msg, err := h.chatService.SendMessage(c.Request.Context(), middleware.UserID(c), c.Param("id"), request.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if msg == nil {
		utils.SuccessResponse(c, "Nothing to send", nil)
		return
	}

	utils.CreatedResponse(c, "Message sent", msg)
}

// UnreadCount reports unread messages for one conversation.
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	count, err := h.chatService.UnreadCount(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Unread count retrieved", gin.H{"unread": count})
}

// TotalUnread reports unread messages across every conversation.
func (h *ChatHandler) TotalUnread(c *gin.Context) {
	count, err := h.chatService.TotalUnread(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Unread count retrieved", gin.H{"unread": count})
}

func (h *ChatHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		utils.UnauthorizedResponse(c)
	case errors.Is(err, store.ErrChatNotFound):
		utils.NotFoundResponse(c, "Chat")
	case errors.Is(err, store.ErrUserNotFound):
		utils.NotFoundResponse(c, "User")
	default:
		utils.InternalServerErrorResponse(c)
	}
}
