package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Ingredient struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CanonicalName    string            `gorm:"uniqueIndex;not null" json:"canonical_name"`
	DisplayName      string            `json:"display_name"`
	Category         string            `json:"category,omitempty"`
	DefaultUnit      string            `json:"default_unit,omitempty"`
	NutritionPer100g datatypes.JSONMap `gorm:"type:jsonb" json:"nutrition_per_100g"`
	SourceIDs        datatypes.JSONMap `gorm:"type:jsonb" json:"source_ids"`
	IsVerified       bool              `json:"is_verified"`

	Translations []IngredientTranslation `gorm:"foreignKey:IngredientID" json:"translations,omitempty"`
	Timestamp
}

// IngredientTranslation holds at most one localized name per ingredient and language.
type IngredientTranslation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_ingredient_lang" json:"ingredient_id"`
	Lang         string    `gorm:"size:8;not null;uniqueIndex:uq_ingredient_lang" json:"lang"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	Timestamp
}

func (i *Ingredient) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (t *IngredientTranslation) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
