package database

import (
	"log"
	"time"

	"nautiblog/config"
	"nautiblog/models"

	"gorm.io/gorm"
)

// Seed provisions first-run data: sample posts when the post table is empty,
// and a single admin account when none exists and ADMIN_INIT_PASSWORD is set.
// Safe to run on every startup.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg.AdminInitPassword); err != nil {
		return err
	}
	return seedPosts(db)
}

func seedAdmin(db *gorm.DB, initPassword string) error {
	var count int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if initPassword == "" {
		log.Println("WARNING: ADMIN_INIT_PASSWORD is not set, no admin account was created")
		return nil
	}

	admin := &models.User{Email: "admin@nautilus.com", IsAdmin: true}
	if err := admin.SetPassword(initPassword); err != nil {
		return err
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Println("Created initial admin account admin@nautilus.com, please change the password")
	return nil
}

func seedPosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	// Attribute samples to the admin when one exists; orphaned posts are
	// tolerated otherwise.
	var userID *uint
	var admin models.User
	if err := db.Where("is_admin = ?", true).First(&admin).Error; err == nil {
		userID = &admin.ID
	}

	now := time.Now().UTC()
	samples := []models.Post{
		{
			Title:     "First prototype update",
			Content:   "Today we started building the main frame. It is going well!",
			ImageFile: "prototype_update.jpg",
			UserID:    userID,
			CreatedAt: now,
		},
		{
			Title:     "Electronics integration",
			Content:   "The first sensors are connected and the wiring is almost done. Waterproofing was a challenge.",
			ImageFile: "electronics_integration.jpg",
			UserID:    userID,
			CreatedAt: now.Add(time.Second),
		},
		{
			Title:     "Welcome to the blog!",
			Content:   "This is our first blog post. Stay tuned for more updates on the project!",
			ImageFile: models.DefaultImage,
			UserID:    userID,
			CreatedAt: now.Add(2 * time.Second),
		},
	}

	if err := db.Create(&samples).Error; err != nil {
		return err
	}

	log.Println("Seeded sample posts")
	return nil
}
