package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Difficulty levels accepted for a recipe.
const (
	DifficultyEasy   = "Mudah"
	DifficultyMedium = "Sedang"
	DifficultyHard   = "Sulit"
)

// ValidDifficulty reports whether d is one of the accepted levels.
func ValidDifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Recipe represents a shared recipe. UserID is nullable: recipes submitted
// without authentication have no owner and can never be updated or deleted.
type Recipe struct {
	ID           string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Category     string         `gorm:"not null;index" json:"category"`
	Ingredients  datatypes.JSON `gorm:"not null" json:"ingredients"`
	Instructions string         `gorm:"type:text;not null" json:"instructions"`
	Image        string         `json:"image"`
	PrepTime     int            `json:"prepTime"` // minutes
	CookTime     int            `json:"cookTime"` // minutes
	Servings     int            `gorm:"default:1" json:"servings"`
	Difficulty   string         `gorm:"not null;default:'Sedang'" json:"difficulty"`
	UserID       *string        `gorm:"type:uuid;index" json:"userId"`

	// Relationships
	Author    *User      `gorm:"foreignKey:UserID" json:"author,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings   []Rating   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Recipe
func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyMedium
	}
	if r.Servings == 0 {
		r.Servings = 1
	}
	return nil
}
