package recipe

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/model"
	authutil "github.com/resep-app/resep-api/utils/auth"
	"github.com/resep-app/resep-api/utils/middleware"
	"github.com/resep-app/resep-api/utils/response"
	"github.com/resep-app/resep-api/utils/validation"
	"gorm.io/gorm"
)

// RecipeHandler handles recipe CRUD requests
type RecipeHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(db *gorm.DB) *RecipeHandler {
	return &RecipeHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateRecipeRequest represents a recipe creation request
type CreateRecipeRequest struct {
	Title        string   `json:"title" validate:"required,min=3,max=255"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions string   `json:"instructions" validate:"required"`
	Image        string   `json:"image"`
	PrepTime     int      `json:"prepTime" validate:"gte=0"`
	CookTime     int      `json:"cookTime" validate:"gte=0"`
	Servings     int      `json:"servings" validate:"gte=0"`
	Difficulty   string   `json:"difficulty"`
}

// UpdateRecipeRequest carries optional replacement fields
type UpdateRecipeRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *string   `json:"instructions"`
	Image        *string   `json:"image"`
	PrepTime     *int      `json:"prepTime"`
	CookTime     *int      `json:"cookTime"`
	Servings     *int      `json:"servings"`
	Difficulty   *string   `json:"difficulty"`
}

// ListRecipes returns all recipes, newest first
func (h *RecipeHandler) ListRecipes(c *fiber.Ctx) error {
	var recipes []model.Recipe
	err := h.db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recipes", err)
	}

	return response.OK(c, fiber.Map{
		"message": "Recipes fetched",
		"recipes": recipes,
	})
}

// GetRecipe returns a single recipe by id
func (h *RecipeHandler) GetRecipe(c *fiber.Ctx) error {
	var recipe model.Recipe
	err := h.db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		First(&recipe, "id = ?", c.Params("id")).Error
	if err == gorm.ErrRecordNotFound {
		return response.NotFound(c, "Recipe not found")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recipe", err)
	}

	return response.OK(c, fiber.Map{"recipe": recipe})
}

// GetRecipesByCategory returns recipes in the given category
func (h *RecipeHandler) GetRecipesByCategory(c *fiber.Ctx) error {
	var recipes []model.Recipe
	err := h.db.
		Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "avatar")
		}).
		Where("category = ?", c.Params("category")).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recipes", err)
	}

	return response.OK(c, fiber.Map{
		"message": "Recipes fetched",
		"recipes": recipes,
	})
}

// CreateRecipe creates a recipe. The route uses optional authentication:
// without a resolved identity the recipe is stored with no owner, and the
// ownership policy will deny every future update or delete on it.
func (h *RecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	var req CreateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.BadRequest(c, validation.FirstError(validation.FormatValidationErrors(err)))
	}

	if req.Difficulty != "" && !model.ValidDifficulty(req.Difficulty) {
		return response.BadRequest(c, "Difficulty must be one of: Mudah, Sedang, Sulit")
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return response.BadRequest(c, "Invalid ingredients")
	}

	recipe := model.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Ingredients:  ingredients,
		Instructions: req.Instructions,
		Image:        req.Image,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
	}

	if userID, ok := middleware.GetUserID(c); ok {
		recipe.UserID = &userID
	}

	if err := h.db.Create(&recipe).Error; err != nil {
		return response.InternalServerError(c, "Failed to create recipe", err)
	}

	return response.Created(c, fiber.Map{
		"message": "Recipe created",
		"recipe":  recipe,
	})
}

// UpdateRecipe replaces the provided fields on an owned recipe
func (h *RecipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var recipe model.Recipe
	err := h.db.First(&recipe, "id = ?", c.Params("id")).Error
	if err == gorm.ErrRecordNotFound {
		return response.NotFound(c, "Recipe not found")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recipe", err)
	}

	if !authutil.CanModify(recipe.UserID, userID) {
		return response.Forbidden(c, "You are not allowed to update this recipe")
	}

	var req UpdateRecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Title != nil {
		if len(*req.Title) < 3 || len(*req.Title) > 255 {
			return response.BadRequest(c, "Title must be between 3 and 255 characters")
		}
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Category != nil {
		recipe.Category = *req.Category
	}
	if req.Ingredients != nil {
		ingredients, err := json.Marshal(*req.Ingredients)
		if err != nil {
			return response.BadRequest(c, "Invalid ingredients")
		}
		recipe.Ingredients = ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = *req.Instructions
	}
	if req.Image != nil {
		recipe.Image = *req.Image
	}
	if req.PrepTime != nil {
		recipe.PrepTime = *req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = *req.CookTime
	}
	if req.Servings != nil {
		recipe.Servings = *req.Servings
	}
	if req.Difficulty != nil {
		if !model.ValidDifficulty(*req.Difficulty) {
			return response.BadRequest(c, "Difficulty must be one of: Mudah, Sedang, Sulit")
		}
		recipe.Difficulty = *req.Difficulty
	}

	if err := h.db.Save(&recipe).Error; err != nil {
		return response.InternalServerError(c, "Failed to update recipe", err)
	}

	return response.OK(c, fiber.Map{
		"message": "Recipe updated",
		"recipe":  recipe,
	})
}

// DeleteRecipe deletes an owned recipe. A denied delete echoes both the
// stored owner id and the requester id back to the client.
func (h *RecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var recipe model.Recipe
	err := h.db.First(&recipe, "id = ?", c.Params("id")).Error
	if err == gorm.ErrRecordNotFound {
		return response.NotFound(c, "Recipe not found")
	}
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recipe", err)
	}

	if !authutil.CanModify(recipe.UserID, userID) {
		ownerID := ""
		if recipe.UserID != nil {
			ownerID = *recipe.UserID
		}
		return response.ForbiddenOwnership(c, "You are not allowed to delete this recipe", ownerID, userID)
	}

	if err := h.db.Delete(&recipe).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete recipe", err)
	}

	return response.OK(c, response.Message{Message: "Recipe deleted"})
}

// MyRecipes returns the caller's recipes, newest first
func (h *RecipeHandler) MyRecipes(c *fiber.Ctx) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var recipes []model.Recipe
	err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch recipes", err)
	}

	return response.OK(c, fiber.Map{
		"message": "Recipes fetched",
		"recipes": recipes,
	})
}
