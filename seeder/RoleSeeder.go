package seeder

import (
	"log"

	"planboard/model"

	"gorm.io/gorm"
)

func SeedRoles(db *gorm.DB) {
	roles := []model.Role{
		{
			Name:        "Administrator",
			Code:        "admin",
			Description: "Full system access",
			IsSystem:    true, // Cannot be deleted
		},
		{
			Name:        "User",
			Code:        "user",
			Description: "Standard registered user",
			IsSystem:    true,
		},
	}

	log.Println("Seeding roles...")

	for _, role := range roles {
		// 'Code' is the unique identifier to check existence
		if err := db.Where(model.Role{Code: role.Code}).FirstOrCreate(&role).Error; err != nil {
			log.Printf("Error seeding role %s: %v", role.Code, err)
		}
	}

	log.Println("Role seeding completed.")
}
