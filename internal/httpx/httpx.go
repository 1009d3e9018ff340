package httpx

import (
	"fmt"

	"github.com/angelina-2003/HushHours/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *fiber.Ctx) string {
	if v := c.Locals("requestid"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func Error(c *fiber.Ctx, status int, code string, message string) error {
	if message == "" {
		message = "Request failed"
	}
	return c.Status(status).JSON(ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestID(c),
	})
}

func BadRequest(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusBadRequest, code, message)
}

func Unauthorized(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusUnauthorized, code, message)
}

func Forbidden(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusForbidden, code, message)
}

func NotFound(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusNotFound, code, message)
}

func Internal(c *fiber.Ctx, code string) error {
	return Error(c, fiber.StatusInternalServerError, code, "Internal server error")
}

// FromError maps a typed service error onto the wire. Storage failures hide
// their cause behind a generic 500 body.
func FromError(c *fiber.Ctx, err error) error {
	code := apperr.CodeOf(err)
	switch code {
	case apperr.CodeNotFound:
		return NotFound(c, string(code), err.Error())
	case apperr.CodeAccessDenied:
		return Forbidden(c, string(code), err.Error())
	case apperr.CodeUnauthenticated:
		return Unauthorized(c, string(code), err.Error())
	case apperr.CodeDuplicateUsername, apperr.CodeInvalidInput:
		return BadRequest(c, string(code), err.Error())
	default:
		return Internal(c, string(apperr.CodeStorageFailure))
	}
}

func LocalUint(c *fiber.Ctx, key string) (uint, error) {
	v := c.Locals(key)
	if v == nil {
		return 0, fmt.Errorf("missing local %s", key)
	}
	u, ok := v.(uint)
	if !ok {
		return 0, fmt.Errorf("invalid local %s", key)
	}
	return u, nil
}
