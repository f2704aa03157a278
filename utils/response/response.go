package response

import (
	"github.com/gofiber/fiber/v2"
)

// Message is the minimal response body: every error and most successes carry
// a human-readable message field.
type Message struct {
	Message string `json:"message"`
}

// OwnershipError is returned when a recipe mutation is denied; it echoes both
// identities back to the client.
type OwnershipError struct {
	Message     string `json:"message"`
	OwnerID     string `json:"ownerId"`
	RequesterID string `json:"requesterId"`
}

// OK returns a 200 response with the given body
func OK(c *fiber.Ctx, body interface{}) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// Created returns a 201 response with the given body
func Created(c *fiber.Ctx, body interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(body)
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Message{Message: message})
}

// Unauthorized returns a 401 Unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return c.Status(fiber.StatusUnauthorized).JSON(Message{Message: message})
}

// Forbidden returns a 403 Forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Access forbidden"
	}
	return c.Status(fiber.StatusForbidden).JSON(Message{Message: message})
}

// ForbiddenOwnership returns a 403 with both identities in the payload
func ForbiddenOwnership(c *fiber.Ctx, message, ownerID, requesterID string) error {
	return c.Status(fiber.StatusForbidden).JSON(OwnershipError{
		Message:     message,
		OwnerID:     ownerID,
		RequesterID: requesterID,
	})
}

// NotFound returns a 404 Not Found response
func NotFound(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return c.Status(fiber.StatusNotFound).JSON(Message{Message: message})
}

// Conflict returns a 409 Conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusConflict).JSON(Message{Message: message})
}

// ConflictField returns a 409 naming the duplicated field
func ConflictField(c *fiber.Ctx, message, field string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{
		"message": message,
		"field":   field,
	})
}

// InternalServerError returns a 500 with the underlying error message
// surfaced in the payload. Acceptable for an internal/dev-stage service.
func InternalServerError(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}
