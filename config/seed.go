package config

import (
	"log"
	"os"

	"github.com/ursmaheshj/payment-portal/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults creates the default categories and the admin account when
// missing. Safe to run on every startup.
func SeedDefaults() {
	categories := []models.Category{
		{Name: "Membership", Description: "Annual membership dues"},
		{Name: "Maintenance", Description: "Facility maintenance contributions"},
		{Name: "Events", Description: "Event participation fees"},
	}
	for _, cat := range categories {
		var cnt int64
		DB.Model(&models.Category{}).Where("name = ?", cat.Name).Count(&cnt)
		if cnt == 0 {
			DB.Create(&cat)
		}
	}

	var cnt int64
	DB.Model(&models.User{}).Where("is_admin = true").Count(&cnt)
	if cnt > 0 {
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("warning: failed to hash seed admin password: %v", err)
		return
	}
	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("warning: failed to seed admin account: %v", err)
		return
	}
	log.Printf("seeded admin account (username=admin)")
}
