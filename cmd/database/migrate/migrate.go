package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"pantry-planner/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PantryItem{}); err != nil {
		log.Fatalf("Error migrating pantry item table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ShoppingListItem{}); err != nil {
		log.Fatalf("Error migrating shopping list item table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MealPlan{}); err != nil {
		log.Fatalf("Error migrating meal plan table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe table: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeBookmark{}); err != nil {
		log.Fatalf("Error migrating recipe bookmark table: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
