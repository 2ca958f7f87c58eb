package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tagalong/internal/config"
	"tagalong/internal/events"
	"tagalong/internal/models"
	"tagalong/internal/store"
	"tagalong/internal/utils"
	"tagalong/pkg/logger"
)

type ChatService interface {
	// Conversation store
	ListChats(ctx context.Context, userID string) ([]*models.Chat, error)
	SelectChat(ctx context.Context, userID, chatID string) (*models.Chat, error)
	FindOrCreateChat(ctx context.Context, userID, otherUserID, rideID string) (*models.Chat, error)

	// Message pipeline
	SendMessage(ctx context.Context, userID, chatID, text string) (*models.Message, error)

	// Read state
	UnreadCount(ctx context.Context, userID, chatID string) (int, error)
	TotalUnread(ctx context.Context, userID string) (int, error)
}

type chatService struct {
	chats  *store.ConversationStore
	users  *store.UserStore
	bus    *events.Bus
	config *config.ChatConfig
	logger *logger.Logger
}

func NewChatService(chats *store.ConversationStore, users *store.UserStore, bus *events.Bus, cfg *config.ChatConfig, log *logger.Logger) ChatService {
	return &chatService{
		chats:  chats,
		users:  users,
		bus:    bus,
		config: cfg,
		logger: log,
	}
}

func (s *chatService) ListChats(ctx context.Context, userID string) ([]*models.Chat, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.chats.LoadForUser(userID), nil
}

// SelectChat designates a conversation as the active one: opening it marks
// every inbound unread message as read before the chat is returned.
func (s *chatService) SelectChat(ctx context.Context, userID, chatID string) (*models.Chat, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	chat, err := s.chats.Get(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(userID) {
		return nil, store.ErrChatNotFound
	}

	if flipped := s.chats.MarkConversationRead(chatID, userID); flipped > 0 {
		s.logger.WithUserID(userID).WithChatID(chatID).Debugf("Marked %d messages as read", flipped)
	}

	return s.chats.Get(chatID)
}

// FindOrCreateChat returns the existing conversation between the two users
// for the ride, or creates an empty one at the front of the store.
func (s *chatService) FindOrCreateChat(ctx context.Context, userID, otherUserID, rideID string) (*models.Chat, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	current, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	other, err := s.users.GetByID(otherUserID)
	if err != nil {
		return nil, err
	}

	if existing, ok := s.chats.FindByPeerAndRide(userID, otherUserID, rideID); ok {
		return existing, nil
	}

	nowTime := time.Now()
	chat := &models.Chat{
		ID:           utils.NewID(),
		RideID:       rideID,
		Participants: []*models.User{current, other},
		Messages:     []*models.Message{},
		LastUpdated:  nowTime,
		CreatedAt:    nowTime,
	}
	s.chats.Insert(chat)

	s.logger.WithUserID(userID).WithChatID(chat.ID).WithRideID(rideID).Info("Chat created")

	return s.chats.Get(chat.ID)
}

// SendMessage appends the outgoing message optimistically and schedules the
// simulated counterpart reply. Whitespace-only text is a silent no-op.
func (s *chatService) SendMessage(ctx context.Context, userID, chatID, text string) (*models.Message, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	chat, err := s.chats.Get(chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(userID) {
		return nil, store.ErrChatNotFound
	}

	msg := &models.Message{
		ID:        utils.NewID(),
		ChatID:    chatID,
		SenderID:  userID,
		Text:      text,
		IsRead:    false,
		Timestamp: time.Now(),
	}
	// Snapshot before the store takes ownership of msg; a concurrent
	// mark-read may flip the stored copy's IsRead at any point after.
	out := *msg
	if err := s.chats.AppendMessage(chatID, msg); err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithUserID(userID).WithChatID(chatID).Debug("Message sent")

	s.scheduleReply(chatID, userID, text)

	return &out, nil
}

// scheduleReply posts the simulated round trip: after the configured delay a
// synthesized reply from the other participant lands in the chat. The chat id
// and original text are captured; the target is re-validated at fire time and
// a vanished conversation drops the reply silently.
func (s *chatService) scheduleReply(chatID, senderID, text string) {
	delay := utils.DefaultReplyDelay
	if s.config != nil && s.config.ReplyDelay > 0 {
		delay = s.config.ReplyDelay
	}

	time.AfterFunc(delay, func() {
		s.deliverReply(chatID, senderID, text)
	})
}

func (s *chatService) deliverReply(chatID, senderID, original string) {
	chat, err := s.chats.Get(chatID)
	if err != nil {
		// Conversation disappeared before the timer fired; drop silently.
		s.logger.WithChatID(chatID).Debug("Dropping reply for missing chat")
		return
	}

	replier := chat.OtherParticipant(senderID)
	if replier == nil {
		return
	}

	reply := &models.Message{
		ID:        utils.NewID(),
		ChatID:    chatID,
		SenderID:  replier.ID,
		Text:      fmt.Sprintf("Got your message: \"%s\"", s.echo(original)),
		IsRead:    false,
		Timestamp: time.Now(),
	}
	if err := s.chats.AppendMessage(chatID, reply); err != nil {
		return
	}

	s.bus.Publish(events.TopicMessageReceived, events.MessageReceived{
		ChatID:      chatID,
		RecipientID: senderID,
		SenderID:    replier.ID,
		SenderName:  replier.Name,
		Text:        s.echo(original),
	})
}

// echo truncates the original text to the configured limit, appending an
// ellipsis when it was cut.
func (s *chatService) echo(text string) string {
	limit := utils.ReplyEchoLimit
	if s.config != nil && s.config.ReplyEchoLimit > 0 {
		limit = s.config.ReplyEchoLimit
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

func (s *chatService) UnreadCount(ctx context.Context, userID, chatID string) (int, error) {
	if userID == "" {
		return 0, ErrNotAuthenticated
	}
	return s.chats.UnreadCountForConversation(chatID, userID), nil
}

func (s *chatService) TotalUnread(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, ErrNotAuthenticated
	}
	return s.chats.TotalUnreadForUser(userID), nil
}
