package migration

import (
	"NutriPlan-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.UserProfile{}); err != nil {
		log.Fatalf("Error migrating user profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DietPlan{}); err != nil {
		log.Fatalf("Error migrating diet plan database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealLog{}); err != nil {
		log.Fatalf("Error migrating meal log database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.NutritionResult{}); err != nil {
		log.Fatalf("Error migrating nutrition result database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
