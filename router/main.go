package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/resep-app/resep-api/config"
	"github.com/resep-app/resep-api/database"
	"github.com/resep-app/resep-api/handlers"
	auth_handlers "github.com/resep-app/resep-api/handlers/auth"
	favorite_handlers "github.com/resep-app/resep-api/handlers/favorite"
	rating_handlers "github.com/resep-app/resep-api/handlers/rating"
	recipe_handlers "github.com/resep-app/resep-api/handlers/recipe"
	"github.com/resep-app/resep-api/utils/auth"
	"github.com/resep-app/resep-api/utils/cache"
	"github.com/resep-app/resep-api/utils/middleware"
	"github.com/resep-app/resep-api/utils/response"
)

func SetupRoutes(app *fiber.App, store database.Storage, getEnv *config.EnviornmentVariable) {
	// Initialize JWT manager with config
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: getEnv.JWT_SECRET,
		Expiry: time.Duration(getEnv.JWT_EXPIRE_DAYS) * 24 * time.Hour,
	})

	// Revocation list is owned here and injected everywhere it is consulted
	revocations := auth.NewRevocationList()

	db := store.GetDB()

	// Redis cache for rating aggregates (optional)
	var redisCache *cache.RedisCache
	if getEnv.REDIS_URL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(getEnv.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Rating caching will be disabled.", err)
			redisCache = nil
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, revocations)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, revocations)
	recipeHandler := recipe_handlers.NewRecipeHandler(db)
	favoriteHandler := favorite_handlers.NewFavoriteHandler(db)
	ratingHandler := rating_handlers.NewRatingHandler(db, redisCache)

	// Apply security middleware
	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: getEnv.ALLOWED_ORIGINS,
	})

	api := app.Group("/api")

	// Health check endpoint (public)
	api.Get("/health", handlers.HandleCheckHealth(store))

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authMiddleware.Required(), authHandler.Me)
	authGroup.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	// Recipe routes
	recipes := api.Group("/recipes")
	recipes.Get("/", recipeHandler.ListRecipes)                                            // Public: list all recipes
	recipes.Get("/category/:category", recipeHandler.GetRecipesByCategory)                 // Public: list by category
	recipes.Get("/user/my-recipes", authMiddleware.Required(), recipeHandler.MyRecipes)    // Protected: caller's recipes
	recipes.Get("/:id", recipeHandler.GetRecipe)                                           // Public: get recipe by ID
	recipes.Post("/", authMiddleware.Optional(), recipeHandler.CreateRecipe)               // Optional auth: anonymous recipes have no owner
	recipes.Put("/:id", authMiddleware.Required(), recipeHandler.UpdateRecipe)             // Protected: owner only
	recipes.Delete("/:id", authMiddleware.Required(), recipeHandler.DeleteRecipe)          // Protected: owner only

	// Favorite routes (all protected)
	favorites := api.Group("/favorites", authMiddleware.Required())
	favorites.Get("/", favoriteHandler.ListFavorites)
	favorites.Post("/", favoriteHandler.AddFavorite)
	favorites.Delete("/:recipeId", favoriteHandler.RemoveFavorite)
	favorites.Get("/check/:recipeId", favoriteHandler.CheckFavorite)

	// Rating routes
	ratings := api.Group("/ratings")
	ratings.Post("/", authMiddleware.Required(), ratingHandler.UpsertRating)               // Protected: add or update rating
	ratings.Get("/:recipeId", ratingHandler.GetRatingsByRecipe)                            // Public: ratings and average
	ratings.Delete("/:recipeId", authMiddleware.Required(), ratingHandler.RemoveRating)    // Protected: remove own rating

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return response.NotFound(c, "Route not found")
	})
}
