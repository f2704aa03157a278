package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/model"
	authutil "github.com/resep-app/resep-api/utils/auth"
	"github.com/resep-app/resep-api/utils/response"
	"github.com/resep-app/resep-api/utils/validation"
	"gorm.io/gorm"
)

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Name, email, and password are required")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FirstError(validation.FormatValidationErrors(err)))
	}

	// Check if email or name is already taken
	var existingUser model.User
	err := h.db.Where("email = ? OR name = ?", req.Email, req.Name).First(&existingUser).Error
	if err == nil {
		field := "name"
		if existingUser.Email == req.Email {
			field = "email"
		}
		return response.ConflictField(c, "Email or username is already registered", field)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Registration failed", err)
	}

	hashedPassword, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to process password", err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := h.db.Create(&user).Error; err != nil {
		// Lost a race against a concurrent registration with the same key
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Email or username is already registered")
		}
		return response.InternalServerError(c, "Failed to create user", err)
	}

	token, err := h.jwtManager.Issue(user.ID)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token", err)
	}

	return response.Created(c, TokenResponse{
		Message: "Registration successful",
		Token:   token,
		User:    user.Public(),
	})
}
