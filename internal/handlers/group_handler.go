package handlers

import (
	"strconv"

	"github.com/angelina-2003/HushHours/internal/cache"
	"github.com/angelina-2003/HushHours/internal/httpx"
	"github.com/angelina-2003/HushHours/internal/observability"
	"github.com/angelina-2003/HushHours/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GroupHandler struct {
	groupService *service.GroupService
	summaryCache *cache.SummaryCache
}

func NewGroupHandler(groupService *service.GroupService, summaryCache *cache.SummaryCache) *GroupHandler {
	return &GroupHandler{groupService: groupService, summaryCache: summaryCache}
}

func parseGroupID(c *fiber.Ctx) (uint, error) {
	id64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id64 == 0 {
		return 0, httpx.BadRequest(c, "invalid_group_id", "Invalid group ID")
	}
	return uint(id64), nil
}

type createGroupRequest struct {
	Name string `json:"name"`
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	group, err := h.groupService.CreateGroup(req.Name, userID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	h.summaryCache.InvalidateGroups()

	return c.Status(fiber.StatusCreated).JSON(group)
}

// GetGroups lists the public group directory annotated for the caller.
func (h *GroupHandler) GetGroups(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	if cached, ok := h.summaryCache.GetGroups(userID); ok {
		return c.JSON(cached)
	}

	groups, err := h.groupService.ListGroups(userID)
	if err != nil {
		return httpx.FromError(c, err)
	}

	_ = h.summaryCache.SetGroups(userID, groups)

	return c.JSON(groups)
}

// GetJoinedGroups lists only the groups the caller belongs to.
func (h *GroupHandler) GetJoinedGroups(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	groups, err := h.groupService.ListJoinedGroups(userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(groups)
}

// GetGroup returns the membership-gated group detail view.
func (h *GroupHandler) GetGroup(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	groupID, err := parseGroupID(c)
	if err != nil {
		return err
	}

	info, err := h.groupService.GetGroupInfo(groupID, userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(info)
}

// JoinGroup adds the caller to a public group. Re-joining is a no-op success.
func (h *GroupHandler) JoinGroup(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	groupID, err := parseGroupID(c)
	if err != nil {
		return err
	}

	if err := h.groupService.JoinGroup(groupID, userID); err != nil {
		return httpx.FromError(c, err)
	}

	h.summaryCache.InvalidateGroups()

	return c.JSON(fiber.Map{"success": true})
}

// GetGroupMessages is public-read: membership is not required.
func (h *GroupHandler) GetGroupMessages(c *fiber.Ctx) error {
	groupID, err := parseGroupID(c)
	if err != nil {
		return err
	}

	messages, err := h.groupService.ListMessages(groupID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(messages)
}

type sendGroupMessageRequest struct {
	Content string `json:"content"`
}

func (h *GroupHandler) SendGroupMessage(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	groupID, err := parseGroupID(c)
	if err != nil {
		return err
	}

	var req sendGroupMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	message, err := h.groupService.SendMessage(groupID, userID, req.Content)
	if err != nil {
		return httpx.FromError(c, err)
	}

	observability.CountMessageSent("group")
	h.summaryCache.InvalidateGroups()

	return c.Status(fiber.StatusCreated).JSON(message.ToResponse())
}
