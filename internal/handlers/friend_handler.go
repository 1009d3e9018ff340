package handlers

import (
	"strconv"

	"github.com/angelina-2003/HushHours/internal/cache"
	"github.com/angelina-2003/HushHours/internal/httpx"
	"github.com/angelina-2003/HushHours/internal/service"
	"github.com/gofiber/fiber/v2"
)

type FriendHandler struct {
	friendService *service.FriendService
	summaryCache  *cache.SummaryCache
}

func NewFriendHandler(friendService *service.FriendService, summaryCache *cache.SummaryCache) *FriendHandler {
	return &FriendHandler{friendService: friendService, summaryCache: summaryCache}
}

// GetFriends returns the derived friend list: everyone the caller shares a
// conversation with, minus locally deleted entries.
func (h *FriendHandler) GetFriends(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(friends)
}

// DeleteFriend hides a friend from the caller's list only.
func (h *FriendHandler) DeleteFriend(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	friendID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || friendID == 0 {
		return httpx.BadRequest(c, "invalid_friend_id", "Invalid friend ID")
	}

	if err := h.friendService.DeleteFriend(userID, uint(friendID)); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *FriendHandler) LikeGroup(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	groupID, err := parseGroupID(c)
	if err != nil {
		return err
	}

	if _, err := h.friendService.LikeGroup(userID, groupID); err != nil {
		return httpx.FromError(c, err)
	}

	// The caller's cached directory still carries the old is_liked flag.
	h.summaryCache.InvalidateGroupsFor(userID)

	return c.JSON(fiber.Map{"success": true, "is_liked": true})
}

func (h *FriendHandler) UnlikeGroup(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	groupID, err := parseGroupID(c)
	if err != nil {
		return err
	}

	if _, err := h.friendService.UnlikeGroup(userID, groupID); err != nil {
		return httpx.FromError(c, err)
	}

	h.summaryCache.InvalidateGroupsFor(userID)

	return c.JSON(fiber.Map{"success": true, "is_liked": false})
}
