package favorite

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/model"
	"github.com/resep-app/resep-api/utils/middleware"
	"github.com/resep-app/resep-api/utils/response"
	"gorm.io/gorm"
)

// FavoriteHandler handles favorite requests. All routes require auth.
type FavoriteHandler struct {
	db *gorm.DB
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

// AddFavoriteRequest represents an add-favorite request
type AddFavoriteRequest struct {
	RecipeID string `json:"recipeId"`
}

// ListFavorites returns the caller's favorites with recipe and author
func (h *FavoriteHandler) ListFavorites(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var favorites []model.Favorite
	err := h.db.
		Preload("Recipe").
		Preload("Recipe.Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch favorites", err)
	}

	return response.OK(c, fiber.Map{
		"message":   "Favorites fetched",
		"favorites": favorites,
	})
}

// AddFavorite marks a recipe as the caller's favorite
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.RecipeID == "" {
		return response.BadRequest(c, "recipeId is required")
	}

	var recipe model.Recipe
	if err := h.db.First(&recipe, "id = ?", req.RecipeID).Error; err != nil {
		return response.NotFound(c, "Recipe not found")
	}

	favorite := model.Favorite{
		UserID:   userID,
		RecipeID: req.RecipeID,
	}

	if err := h.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Recipe is already in favorites")
		}
		return response.InternalServerError(c, "Failed to add favorite", err)
	}

	return response.Created(c, fiber.Map{
		"message":  "Recipe added to favorites",
		"favorite": favorite,
	})
}

// RemoveFavorite deletes the caller's favorite for a recipe. The delete is
// scoped to (caller, recipe): a missing row answers 404 whether the favorite
// never existed or belongs to someone else.
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	result := h.db.
		Where("user_id = ? AND recipe_id = ?", userID, c.Params("recipeId")).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to remove favorite", result.Error)
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Favorite not found")
	}

	return response.OK(c, response.Message{Message: "Recipe removed from favorites"})
}

// CheckFavorite reports whether the caller has favorited a recipe
func (h *FavoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var count int64
	err := h.db.
		Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, c.Params("recipeId")).
		Count(&count).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to check favorite", err)
	}

	return response.OK(c, fiber.Map{"isFavorite": count > 0})
}
