package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a 1-5 score a user gives a recipe, with an optional comment.
// One row per (user, recipe); a second submission updates the existing row.
type Rating struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Score     int       `gorm:"not null" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_recipe" json:"userId"`
	RecipeID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_recipe" json:"recipeId"`

	// Relationships
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

// TableName specifies the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
