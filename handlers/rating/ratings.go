package rating

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/model"
	"github.com/resep-app/resep-api/utils/cache"
	"github.com/resep-app/resep-api/utils/middleware"
	"github.com/resep-app/resep-api/utils/response"
	"gorm.io/gorm"
)

const ratingCacheTTL = 5 * time.Minute

// RatingHandler handles rating requests. The per-recipe rating listing is
// served read-through from Redis when a cache is configured.
type RatingHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewRatingHandler creates a new rating handler. cache may be nil.
func NewRatingHandler(db *gorm.DB, redisCache *cache.RedisCache) *RatingHandler {
	return &RatingHandler{
		db:    db,
		cache: redisCache,
	}
}

// UpsertRatingRequest represents a rating submission
type UpsertRatingRequest struct {
	RecipeID string `json:"recipeId"`
	Score    int    `json:"score"`
	Comment  string `json:"comment"`
}

// RatingSummary is the cached per-recipe ratings payload
type RatingSummary struct {
	Message string         `json:"message"`
	Average float64        `json:"average"`
	Count   int            `json:"count"`
	Ratings []model.Rating `json:"ratings"`
}

func ratingCacheKey(recipeID string) string {
	return fmt.Sprintf("ratings:recipe:%s", recipeID)
}

func (h *RatingHandler) invalidate(c *fiber.Ctx, recipeID string) {
	if h.cache == nil {
		return
	}
	// Cache failures never fail the request
	_ = h.cache.Delete(c.Context(), ratingCacheKey(recipeID))
}

// UpsertRating creates or updates the caller's rating for a recipe
func (h *RatingHandler) UpsertRating(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var req UpsertRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.RecipeID == "" || req.Score == 0 {
		return response.BadRequest(c, "recipeId and score are required")
	}
	if req.Score < 1 || req.Score > 5 {
		return response.BadRequest(c, "score must be between 1 and 5")
	}

	var recipe model.Recipe
	if err := h.db.First(&recipe, "id = ?", req.RecipeID).Error; err != nil {
		return response.NotFound(c, "Recipe not found")
	}

	var rating model.Rating
	err := h.db.Where("user_id = ? AND recipe_id = ?", userID, req.RecipeID).First(&rating).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return response.InternalServerError(c, "Failed to save rating", err)
	}

	if created {
		rating = model.Rating{
			UserID:   userID,
			RecipeID: req.RecipeID,
			Score:    req.Score,
			Comment:  req.Comment,
		}
		if err := h.db.Create(&rating).Error; err != nil {
			return response.InternalServerError(c, "Failed to save rating", err)
		}
	} else {
		rating.Score = req.Score
		rating.Comment = req.Comment
		if err := h.db.Save(&rating).Error; err != nil {
			return response.InternalServerError(c, "Failed to save rating", err)
		}
	}

	h.invalidate(c, req.RecipeID)

	message := "Rating updated"
	if created {
		message = "Rating created"
	}

	return response.OK(c, fiber.Map{
		"message": message,
		"rating":  rating,
	})
}

// GetRatingsByRecipe returns all ratings for a recipe with the average score
func (h *RatingHandler) GetRatingsByRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("recipeId")

	if h.cache != nil {
		var cached RatingSummary
		if err := h.cache.GetJSON(c.Context(), ratingCacheKey(recipeID), &cached); err == nil {
			return response.OK(c, cached)
		}
	}

	var recipe model.Recipe
	if err := h.db.First(&recipe, "id = ?", recipeID).Error; err != nil {
		return response.NotFound(c, "Recipe not found")
	}

	var ratings []model.Rating
	err := h.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch ratings", err)
	}

	average := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Score
		}
		average = math.Round(float64(sum)/float64(len(ratings))*100) / 100
	}

	summary := RatingSummary{
		Message: "Ratings fetched",
		Average: average,
		Count:   len(ratings),
		Ratings: ratings,
	}

	if h.cache != nil {
		_ = h.cache.SetJSON(c.Context(), ratingCacheKey(recipeID), summary, ratingCacheTTL)
	}

	return response.OK(c, summary)
}

// RemoveRating deletes the caller's rating for a recipe. Scoped to
// (caller, recipe); a missing row answers 404.
func (h *RatingHandler) RemoveRating(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	recipeID := c.Params("recipeId")

	result := h.db.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.Rating{})
	if result.Error != nil {
		return response.InternalServerError(c, "Failed to remove rating", result.Error)
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, "Rating not found")
	}

	h.invalidate(c, recipeID)

	return response.OK(c, response.Message{Message: "Rating removed"})
}
