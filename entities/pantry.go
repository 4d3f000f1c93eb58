package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PantryItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_pantry_user_ingredient_unit" json:"user_id"`
	IngredientID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_pantry_user_ingredient_unit" json:"ingredient_id"`
	Unit         string     `gorm:"not null;uniqueIndex:uq_pantry_user_ingredient_unit" json:"unit"`
	Quantity     float64    `json:"quantity"`
	ExpiresAt    *time.Time `gorm:"index" json:"expires_at"`
	Note         string     `json:"note,omitempty"`

	User       *User       `gorm:"foreignKey:UserID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	IngredientID   uuid.UUID  `gorm:"type:uuid;not null" json:"ingredient_id"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	LinkedRecipeID *uuid.UUID `gorm:"type:uuid" json:"linked_recipe_id"`
	IsChecked      bool       `json:"is_checked"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Timestamp
}

// UserFoodLog is a consumption event. NutritionSnapshot is frozen at log time.
type UserFoodLog struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type              string            `gorm:"not null" json:"type"`
	RecipeID          *uuid.UUID        `gorm:"type:uuid" json:"recipe_id"`
	IngredientID      *uuid.UUID        `gorm:"type:uuid" json:"ingredient_id"`
	Quantity          float64           `json:"quantity"`
	Unit              string            `json:"unit"`
	NutritionSnapshot datatypes.JSONMap `gorm:"type:jsonb" json:"nutrition_snapshot"`
	LoggedAt          time.Time         `gorm:"index" json:"logged_at"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Timestamp
}

func (p *PantryItem) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (s *ShoppingListItem) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (l *UserFoodLog) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
