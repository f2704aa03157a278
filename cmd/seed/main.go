package main

import (
	"log"

	"github.com/resep-app/resep-api/config"
	"github.com/resep-app/resep-api/database"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		log.Fatal("Failed to migrate tables:", err)
	}

	if err := database.Seed(store.GetDB()); err != nil {
		log.Fatal("Seed error:", err)
	}

	log.Println("Seed completed")
}
