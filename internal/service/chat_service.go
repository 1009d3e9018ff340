package service

import (
	"errors"
	"sort"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/angelina-2003/HushHours/internal/models"
	"github.com/angelina-2003/HushHours/internal/repository"
	"github.com/angelina-2003/HushHours/internal/validation"
	"gorm.io/gorm"
)

// ChatService owns conversation resolution and the direct-message ledger.
type ChatService struct {
	conversationRepo repository.ConversationRepositoryInterface
	messageRepo      repository.MessageRepositoryInterface
	userRepo         repository.UserRepositoryInterface
}

func NewChatService(
	conversationRepo repository.ConversationRepositoryInterface,
	messageRepo repository.MessageRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
) *ChatService {
	return &ChatService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
	}
}

// StartConversation resolves the canonical conversation between the caller
// and another user, creating it on first contact. Calling it again with the
// arguments swapped lands on the same row.
func (s *ChatService) StartConversation(userID, otherID uint) (*models.Conversation, error) {
	if userID == otherID {
		return nil, apperr.InvalidInput("cannot start a conversation with yourself")
	}

	if _, err := s.userRepo.FindByID(otherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage("user lookup failed", err)
	}

	conv, err := s.conversationRepo.GetOrCreate(userID, otherID)
	if err != nil {
		return nil, apperr.Storage("conversation resolve failed", err)
	}
	return conv, nil
}

func (s *ChatService) ListConversations(userID uint) ([]models.ConversationSummary, error) {
	summaries, err := s.conversationRepo.ListSummaries(userID)
	if err != nil {
		return nil, apperr.Storage("conversation list failed", err)
	}
	if summaries == nil {
		summaries = []models.ConversationSummary{}
	}
	return summaries, nil
}

// ListMessages returns the full ledger of a conversation the caller
// participates in. The participant check is the route-level guard for reads.
func (s *ChatService) ListMessages(conversationID, requesterID uint) ([]models.MessageResponse, error) {
	conv, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("conversation not found")
		}
		return nil, apperr.Storage("conversation lookup failed", err)
	}
	if !conv.HasParticipant(requesterID) {
		return nil, apperr.AccessDenied("not a participant of this conversation")
	}

	messages, err := s.messageRepo.ListByConversation(conversationID)
	if err != nil {
		return nil, apperr.Storage("message list failed", err)
	}

	sortMessages(messages)

	out := make([]models.MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, messages[i].ToResponse())
	}
	return out, nil
}

// SendMessage appends to the ledger. Only the two participants may write.
// The resolved conversation is returned alongside the message so callers can
// invalidate both participants' cached listings.
func (s *ChatService) SendMessage(senderID, conversationID uint, content string) (*models.Message, *models.Conversation, error) {
	content = validation.TrimAndLimit(content, validation.MaxMessageLength())
	if content == "" {
		return nil, nil, apperr.InvalidInput("message content is required")
	}

	conv, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("conversation not found")
		}
		return nil, nil, apperr.Storage("conversation lookup failed", err)
	}
	if !conv.HasParticipant(senderID) {
		return nil, nil, apperr.AccessDenied("not a participant of this conversation")
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, nil, apperr.Storage("message insert failed", err)
	}

	// Reload with sender profile for the response.
	created, err := s.messageRepo.FindByID(message.ID)
	if err != nil {
		return message, conv, nil
	}
	return created, conv, nil
}

// sortMessages enforces (timestamp, id) order even if a repository returns
// rows in a different sequence. Same-timestamp pairs stay in insert order.
func sortMessages(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
