package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/model"
	authutil "github.com/resep-app/resep-api/utils/auth"
	"github.com/resep-app/resep-api/utils/response"
)

// LoginRequest accepts a name or email in any of the identifier fields
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
}

// Login handles user login by name or email
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		identifier = req.Name
	}

	if identifier == "" || req.Password == "" {
		return response.BadRequest(c, "Identifier and password are required")
	}

	// Same response for unknown user and wrong password
	var user model.User
	if err := h.db.Where("email = ? OR name = ?", identifier, identifier).First(&user).Error; err != nil {
		return response.Unauthorized(c, "Invalid name/email or password")
	}

	if err := authutil.VerifyPassword(user.Password, req.Password); err != nil {
		return response.Unauthorized(c, "Invalid name/email or password")
	}

	token, err := h.jwtManager.Issue(user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token", err)
	}

	return response.OK(c, TokenResponse{
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}
