package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/resep-app/resep-api/config"
	"github.com/resep-app/resep-api/database"
)

// newIntegrationApp wires the full route table against a live Postgres.
// Requires RUN_INTEGRATION_TESTS=true and the usual DB_* environment.
func newIntegrationApp(t *testing.T) *fiber.App {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	getEnv, err := config.Get()
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		t.Fatalf("database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Init(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	SetupRoutes(app, store, getEnv)
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, app *fiber.App) (token string, userID string) {
	t.Helper()

	name := "it_" + uuid.New().String()[:8]
	status, body := request(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     name,
		"email":    name + "@example.com",
		"password": "password123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: status %d, body %v", status, body)
	}

	token = body["token"].(string)
	userID = body["user"].(map[string]interface{})["id"].(string)
	return token, userID
}

func createRecipe(t *testing.T, app *fiber.App, token string) string {
	t.Helper()

	status, body := request(t, app, http.MethodPost, "/api/recipes", token, fiber.Map{
		"title":        "Integration Nasi Goreng",
		"category":     "Main",
		"ingredients":  []string{"Nasi", "Telur"},
		"instructions": "Goreng semua bahan",
	})
	if status != http.StatusCreated {
		t.Fatalf("create recipe: status %d, body %v", status, body)
	}
	return body["recipe"].(map[string]interface{})["id"].(string)
}

func TestOwnershipAsymmetry(t *testing.T) {
	app := newIntegrationApp(t)

	tokenA, userA := registerUser(t, app)
	tokenB, _ := registerUser(t, app)

	recipeID := createRecipe(t, app, tokenA)

	// B cannot delete A's recipe; the denial names both identities
	status, body := request(t, app, http.MethodDelete, "/api/recipes/"+recipeID, tokenB, nil)
	if status != http.StatusForbidden {
		t.Fatalf("delete by non-owner: status %d, want 403", status)
	}
	if body["ownerId"] != userA {
		t.Errorf("ownerId = %v, want %v", body["ownerId"], userA)
	}
	if body["requesterId"] == nil || body["requesterId"] == "" {
		t.Error("requesterId missing from denial payload")
	}

	// B cannot update it either; plain message, no ids
	status, body = request(t, app, http.MethodPut, "/api/recipes/"+recipeID, tokenB, fiber.Map{"title": "Stolen"})
	if status != http.StatusForbidden {
		t.Fatalf("update by non-owner: status %d, want 403", status)
	}
	if _, leaked := body["ownerId"]; leaked {
		t.Error("update denial leaked ownerId")
	}

	// A favorites the recipe; B removing "A's favorite" sees a plain 404
	status, _ = request(t, app, http.MethodPost, "/api/favorites", tokenA, fiber.Map{"recipeId": recipeID})
	if status != http.StatusCreated {
		t.Fatalf("add favorite: status %d, want 201", status)
	}
	status, body = request(t, app, http.MethodDelete, "/api/favorites/"+recipeID, tokenB, nil)
	if status != http.StatusNotFound {
		t.Fatalf("remove foreign favorite: status %d, want 404", status)
	}
	if _, leaked := body["ownerId"]; leaked {
		t.Error("favorite 404 leaked ownerId")
	}

	// Owner can delete
	status, _ = request(t, app, http.MethodDelete, "/api/recipes/"+recipeID, tokenA, nil)
	if status != http.StatusOK {
		t.Fatalf("delete by owner: status %d, want 200", status)
	}
}

func TestAnonymousRecipeHasNoOwner(t *testing.T) {
	app := newIntegrationApp(t)

	status, body := request(t, app, http.MethodPost, "/api/recipes", "", fiber.Map{
		"title":        "Anonymous Sambal",
		"category":     "Side",
		"ingredients":  []string{"Cabai", "Bawang"},
		"instructions": "Ulek sampai halus",
	})
	if status != http.StatusCreated {
		t.Fatalf("anonymous create: status %d, body %v", status, body)
	}

	recipe := body["recipe"].(map[string]interface{})
	if recipe["userId"] != nil {
		t.Errorf("anonymous recipe has owner %v", recipe["userId"])
	}
	recipeID := recipe["id"].(string)

	// Nobody can mutate an ownerless recipe, not even a fresh authenticated user
	token, _ := registerUser(t, app)
	status, _ = request(t, app, http.MethodPut, "/api/recipes/"+recipeID, token, fiber.Map{"title": "Claimed"})
	if status != http.StatusForbidden {
		t.Errorf("update of ownerless recipe: status %d, want 403", status)
	}
	status, _ = request(t, app, http.MethodDelete, "/api/recipes/"+recipeID, token, nil)
	if status != http.StatusForbidden {
		t.Errorf("delete of ownerless recipe: status %d, want 403", status)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	app := newIntegrationApp(t)

	token, _ := registerUser(t, app)

	status, _ := request(t, app, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me before logout: status %d, want 200", status)
	}

	status, _ = request(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logout: status %d, want 200", status)
	}

	status, _ = request(t, app, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusUnauthorized {
		t.Errorf("me after logout: status %d, want 401", status)
	}
}

func TestRatingUpsertAndAverage(t *testing.T) {
	app := newIntegrationApp(t)

	tokenA, _ := registerUser(t, app)
	tokenB, _ := registerUser(t, app)
	recipeID := createRecipe(t, app, tokenA)

	status, _ := request(t, app, http.MethodPost, "/api/ratings", tokenA, fiber.Map{"recipeId": recipeID, "score": 5})
	if status != http.StatusOK {
		t.Fatalf("rate as A: status %d, want 200", status)
	}
	status, _ = request(t, app, http.MethodPost, "/api/ratings", tokenB, fiber.Map{"recipeId": recipeID, "score": 2})
	if status != http.StatusOK {
		t.Fatalf("rate as B: status %d, want 200", status)
	}

	// Second submission by the same user updates in place
	status, body := request(t, app, http.MethodPost, "/api/ratings", tokenB, fiber.Map{"recipeId": recipeID, "score": 4})
	if status != http.StatusOK {
		t.Fatalf("re-rate as B: status %d, want 200", status)
	}
	if body["message"] != "Rating updated" {
		t.Errorf("message = %v, want Rating updated", body["message"])
	}

	status, body = request(t, app, http.MethodGet, "/api/ratings/"+recipeID, "", nil)
	if status != http.StatusOK {
		t.Fatalf("get ratings: status %d, want 200", status)
	}
	if count := body["count"].(float64); count != 2 {
		t.Errorf("count = %v, want 2", count)
	}
	if avg := body["average"].(float64); avg != 4.5 {
		t.Errorf("average = %v, want 4.5", avg)
	}

	// Out-of-range score rejected
	status, _ = request(t, app, http.MethodPost, "/api/ratings", tokenA, fiber.Map{"recipeId": recipeID, "score": 6})
	if status != http.StatusBadRequest {
		t.Errorf("score 6: status %d, want 400", status)
	}
}

func TestDuplicateFavoriteConflicts(t *testing.T) {
	app := newIntegrationApp(t)

	token, _ := registerUser(t, app)
	recipeID := createRecipe(t, app, token)

	status, _ := request(t, app, http.MethodPost, "/api/favorites", token, fiber.Map{"recipeId": recipeID})
	if status != http.StatusCreated {
		t.Fatalf("first favorite: status %d, want 201", status)
	}
	status, _ = request(t, app, http.MethodPost, "/api/favorites", token, fiber.Map{"recipeId": recipeID})
	if status != http.StatusConflict {
		t.Errorf("duplicate favorite: status %d, want 409", status)
	}

	status, body := request(t, app, http.MethodGet, "/api/favorites/check/"+recipeID, token, nil)
	if status != http.StatusOK || body["isFavorite"] != true {
		t.Errorf("check favorite: status %d, isFavorite %v", status, body["isFavorite"])
	}
}

func TestDuplicateRegistrationConflicts(t *testing.T) {
	app := newIntegrationApp(t)

	name := "it_" + uuid.New().String()[:8]
	payload := fiber.Map{
		"name":     name,
		"email":    fmt.Sprintf("%s@example.com", name),
		"password": "password123",
	}

	status, _ := request(t, app, http.MethodPost, "/api/auth/register", "", payload)
	if status != http.StatusCreated {
		t.Fatalf("first register: status %d, want 201", status)
	}

	status, body := request(t, app, http.MethodPost, "/api/auth/register", "", payload)
	if status != http.StatusConflict {
		t.Fatalf("duplicate register: status %d, want 409", status)
	}
	if body["field"] != "email" {
		t.Errorf("field = %v, want email", body["field"])
	}
}
