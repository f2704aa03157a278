package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/resep-app/resep-api/utils/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.JWTManager, *auth.RevocationList) {
	t.Helper()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
	revocations := auth.NewRevocationList()
	m := NewAuthMiddleware(jwtManager, revocations)

	app := fiber.New()

	echo := func(c *fiber.Ctx) error {
		userID, _ := GetUserID(c)
		return c.JSON(fiber.Map{"user_id": userID})
	}
	app.Get("/required", m.Required(), echo)
	app.Get("/optional", m.Optional(), echo)

	return app, jwtManager, revocations
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestRequiredMissingHeader(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, _ := doRequest(t, app, "/required", "")
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

func TestRequiredMalformedHeader(t *testing.T) {
	app, jwtManager, _ := newTestApp(t)
	token, _ := jwtManager.Issue(uuid.New().String())

	for _, header := range []string{"Bearer", token, "Basic " + token, "Bearer  " + token + " extra"} {
		status, _ := doRequest(t, app, "/required", header)
		if status != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, status)
		}
	}
}

func TestRequiredValidToken(t *testing.T) {
	app, jwtManager, _ := newTestApp(t)
	userID := uuid.New().String()
	token, _ := jwtManager.Issue(userID)

	status, body := doRequest(t, app, "/required", "Bearer "+token)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["user_id"] != userID {
		t.Errorf("bound identity = %q, want %q", body["user_id"], userID)
	}
}

func TestRequiredRevokedToken(t *testing.T) {
	app, jwtManager, revocations := newTestApp(t)
	token, _ := jwtManager.Issue(uuid.New().String())

	revocations.Revoke(token)

	// Every resolution after a revoke must reject
	for i := 0; i < 3; i++ {
		status, _ := doRequest(t, app, "/required", "Bearer "+token)
		if status != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", status)
		}
	}
}

func TestRequiredExpiredToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	expired := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	token, _ := expired.Issue(uuid.New().String())

	status, _ := doRequest(t, app, "/required", "Bearer "+token)
	if status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
}

func TestOptionalNoHeader(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := doRequest(t, app, "/optional", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["user_id"] != "" {
		t.Errorf("anonymous request bound identity %q", body["user_id"])
	}
}

func TestOptionalInvalidToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := doRequest(t, app, "/optional", "Bearer not-a-token")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["user_id"] != "" {
		t.Errorf("invalid token bound identity %q", body["user_id"])
	}
}

func TestOptionalValidToken(t *testing.T) {
	app, jwtManager, _ := newTestApp(t)
	userID := uuid.New().String()
	token, _ := jwtManager.Issue(userID)

	status, body := doRequest(t, app, "/optional", "Bearer "+token)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["user_id"] != userID {
		t.Errorf("bound identity = %q, want %q", body["user_id"], userID)
	}
}

func TestOptionalSkipsRevocationCheck(t *testing.T) {
	app, jwtManager, revocations := newTestApp(t)
	userID := uuid.New().String()
	token, _ := jwtManager.Issue(userID)

	revocations.Revoke(token)

	// Optional resolution does not consult the revocation list; a logged-out
	// token keeps resolving on optional routes until it expires.
	status, body := doRequest(t, app, "/optional", "Bearer "+token)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body["user_id"] != userID {
		t.Errorf("bound identity = %q, want %q", body["user_id"], userID)
	}
}
