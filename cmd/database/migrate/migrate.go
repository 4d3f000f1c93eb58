package migration

import (
	"fmt"

	"pantry-backend/entities"

	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&entities.User{},
		&entities.Ingredient{},
		&entities.IngredientTranslation{},
		&entities.Recipe{},
		&entities.RecipeTranslation{},
		&entities.RecipeIngredient{},
		&entities.PantryItem{},
		&entities.ShoppingListItem{},
		&entities.UserFoodLog{},
		&entities.TranslationJob{},
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
		}
	}

	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}
