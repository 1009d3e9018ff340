package handlers

import (
	"strconv"

	"github.com/angelina-2003/HushHours/internal/httpx"
	"github.com/angelina-2003/HushHours/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe returns the authenticated user's full profile, gifts included.
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(profile)
}

// GetUser returns another user's public profile.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id64 == 0 {
		return httpx.BadRequest(c, "invalid_user_id", "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(uint(id64))
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(user.ToResponse())
}

// SearchUsers finds users by exact username, case-insensitively.
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	term := c.Query("username")
	if term == "" {
		return httpx.BadRequest(c, "missing_username", "Search term is required")
	}

	results, err := h.userService.SearchUsers(term, userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(results)
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// UpdateAvatar sets the caller's catalog avatar key.
func (h *UserHandler) UpdateAvatar(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	var req updateAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	if err := h.userService.UpdateAvatar(userID, req.Avatar); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "avatar": req.Avatar})
}

type messageColorRequest struct {
	Color string `json:"color"`
}

func (h *UserHandler) GetMessageColor(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	color, err := h.userService.GetMessageColor(userID)
	if err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"color": color})
}

func (h *UserHandler) SetMessageColor(c *fiber.Ctx) error {
	userID, err := httpx.LocalUint(c, "userID")
	if err != nil {
		return httpx.Unauthorized(c, "unauthorized", "Not logged in")
	}

	var req messageColorRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "invalid_request_body", "Invalid request body")
	}

	if err := h.userService.SetMessageColor(userID, req.Color); err != nil {
		return httpx.FromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "color": req.Color})
}
