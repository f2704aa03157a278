package database

import (
	"encoding/json"
	"log"

	"github.com/resep-app/resep-api/model"
	authutil "github.com/resep-app/resep-api/utils/auth"
	"gorm.io/gorm"
)

// Seed inserts a demo user, recipe and favorite if they are not present yet.
// Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	hashed, err := authutil.HashPassword("password123")
	if err != nil {
		return err
	}

	var user model.User
	err = db.Where("email = ?", "seed_user@example.com").First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = model.User{
			Name:     "seed_user",
			Email:    "seed_user@example.com",
			Password: hashed,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	log.Println("User ready:", user.ID, user.Email)

	ingredients, _ := json.Marshal([]string{"Nasi", "Telur", "Bawang", "Kecap"})

	var recipe model.Recipe
	err = db.Where("title = ?", "Sample Nasi Goreng").First(&recipe).Error
	if err == gorm.ErrRecordNotFound {
		recipe = model.Recipe{
			Title:        "Sample Nasi Goreng",
			Description:  "Contoh resep nasi goreng sederhana",
			Category:     "Main",
			Ingredients:  ingredients,
			Instructions: "Tumis bumbu, masukkan nasi, aduk, sajikan",
			UserID:       &user.ID,
		}
		if err := db.Create(&recipe).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	log.Println("Recipe ready:", recipe.ID, recipe.Title)

	var favorite model.Favorite
	err = db.Where("user_id = ? AND recipe_id = ?", user.ID, recipe.ID).First(&favorite).Error
	if err == gorm.ErrRecordNotFound {
		favorite = model.Favorite{UserID: user.ID, RecipeID: recipe.ID}
		if err := db.Create(&favorite).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	log.Println("Favorite ensured for user -> recipe")

	return nil
}
