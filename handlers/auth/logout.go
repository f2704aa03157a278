package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/utils/middleware"
	"github.com/resep-app/resep-api/utils/response"
)

// Logout revokes the presented token. Always answers 200; revoking an
// already-revoked token is a no-op.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token, ok := middleware.GetToken(c); ok {
		h.revocations.Revoke(token)
	}

	return response.OK(c, response.Message{Message: "Logout successful"})
}
