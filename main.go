package main

import (
	"log"
	"os"

	"nautiblog/config"
	"nautiblog/database"
	"nautiblog/routes"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	if err := database.Seed(db, cfg); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	r := routes.NewRouter(cfg, db)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
