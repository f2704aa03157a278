package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/model"
	"github.com/resep-app/resep-api/utils/middleware"
	"github.com/resep-app/resep-api/utils/response"
)

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var user model.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return response.NotFound(c, "User not found")
	}

	return response.OK(c, fiber.Map{"user": user.Public()})
}
