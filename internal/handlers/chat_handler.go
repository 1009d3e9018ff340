package handlers

import (
	"strconv"

	"github.com/angelina-2003/HushHours/internal/cache"
	"github.com/angelina-2003/HushHours/internal/httpx"
	"github.com/angelina-2003/HushHours/internal/observability"
	"github.com/angelina-2003/HushHours/internal/service"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService  *service.ChatService
	summaryCache *cache.SummaryCache
}

func NewChatHandler(chatService *service.ChatService, summaryCache *cache.SummaryCache) *ChatHandler {
	return &ChatHandler{chatService: chatService, summaryCache: summaryCache}
}

type startConversationRequest struct {
	UserID uint `json:"user_id"`
}

// StartConversation resolves (or lazily creates) the canonical conversation
// between the caller and another user.
func (h *ChatHandler) StartConversation(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	var req startConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if req.UserID == 0 {
		return httpx.BadRequest(c, "missing_user_id", "user_id is required")
	}

	conv, err := h.chatService.StartConversation(userID, req.UserID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	h.summaryCache.InvalidateConversations(conv.UserA, conv.UserB)

	return c.JSON(fiber.Map{"conversation_id": conv.ID})
}

// GetConversations lists the caller's conversations with latest-message
// previews, most recently active first.
func (h *ChatHandler) GetConversations(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	if cached, ok := h.summaryCache.GetConversations(userID); ok {
		return c.JSON(cached)
	}

	summaries, err := h.chatService.ListConversations(userID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	_ = h.summaryCache.SetConversations(userID, summaries)

	return c.JSON(summaries)
}

// GetMessages returns a conversation's full ledger in display order.
func (h *ChatHandler) GetMessages(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	convID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || convID == 0 {
		return httpx.BadRequest(c, "invalid_conversation_id", "Invalid conversation ID")
	}

	messages, err := h.chatService.ListMessages(uint(convID), userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(messages)
}

type sendMessageRequest struct {
	ConversationID uint   `json:"conversation_id"`
	Content        string `json:"content"`
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}
	if req.ConversationID == 0 {
		return httpx.BadRequest(c, "missing_conversation_id", "conversation_id is required")
	}

	message, conv, err := h.chatService.SendMessage(userID, req.ConversationID, req.Content)
	if err != nil {
		return httpx.FromError(c, err)
	}

	observability.CountMessageSent("direct")
	h.summaryCache.InvalidateConversations(conv.UserA, conv.UserB)

	return c.Status(fiber.StatusCreated).JSON(message.ToResponse())
}
