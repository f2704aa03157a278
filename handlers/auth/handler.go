package auth

import (
	"github.com/resep-app/resep-api/model"
	authutil "github.com/resep-app/resep-api/utils/auth"
	"github.com/resep-app/resep-api/utils/validation"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	db          *gorm.DB
	jwtManager  *authutil.JWTManager
	revocations *authutil.RevocationList
	validator   *validation.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, revocations *authutil.RevocationList) *AuthHandler {
	return &AuthHandler{
		db:          db,
		jwtManager:  jwtManager,
		revocations: revocations,
		validator:   validation.NewValidator(),
	}
}

// TokenResponse is returned by register and login
type TokenResponse struct {
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    model.PublicUser `json:"user"`
}
