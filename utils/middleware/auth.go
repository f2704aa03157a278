package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/utils/auth"
	"github.com/resep-app/resep-api/utils/response"
)

// AuthMiddleware resolves the caller identity from bearer tokens
type AuthMiddleware struct {
	jwtManager  *auth.JWTManager
	revocations *auth.RevocationList
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, revocations *auth.RevocationList) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:  jwtManager,
		revocations: revocations,
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. Returns "" for a missing header or malformed scheme.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// Required is middleware that rejects requests without a valid, unrevoked
// token. Revocation is checked before signature verification; revoked and
// invalid tokens get the same response so callers cannot tell which check
// failed.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return response.Unauthorized(c, "Missing authorization token")
		}

		if m.revocations.IsRevoked(tokenString) {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		userID, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Locals("user_id", userID)
		c.Locals("token", tokenString)

		return c.Next()
	}
}

// Optional is middleware that never rejects: any resolution failure proceeds
// without a bound identity. It does not consult the revocation list, so a
// logged-out token still resolves on optional routes until it expires.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return c.Next()
		}

		userID, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", userID)
		c.Locals("token", tokenString)

		return c.Next()
	}
}

// GetUserID extracts the resolved user id from context
func GetUserID(c *fiber.Ctx) (string, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetToken extracts the raw bearer token from context
func GetToken(c *fiber.Ctx) (string, bool) {
	token := c.Locals("token")
	if token == nil {
		return "", false
	}
	t, ok := token.(string)
	return t, ok && t != ""
}
