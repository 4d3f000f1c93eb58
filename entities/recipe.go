package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recipe is a recipe imported from an external provider, unique per (source, external id).
type Recipe struct {
	ID                  uuid.UUID                   `gorm:"type:uuid;primary_key" json:"id"`
	Source              string                      `gorm:"not null;uniqueIndex:uq_source_external_id" json:"source"`
	ExternalID          string                      `gorm:"not null;uniqueIndex:uq_source_external_id" json:"external_id"`
	TitleOriginal       string                      `json:"title_original"`
	ImageURL            string                      `json:"image_url,omitempty"`
	Servings            int                         `json:"servings"`
	Diets               datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"diets"`
	IntolerancesWarn    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"intolerances_warn"`
	NutritionPerServing datatypes.JSONMap           `gorm:"type:jsonb" json:"nutrition_per_serving"`
	InstructionsRaw     string                      `gorm:"type:text" json:"instructions_raw"`
	RawJSON             datatypes.JSON              `gorm:"type:jsonb" json:"-"`

	Translations []RecipeTranslation `gorm:"foreignKey:RecipeID" json:"translations,omitempty"`
	Ingredients  []RecipeIngredient  `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Timestamp
}

type RecipeTranslation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recipe_lang" json:"recipe_id"`
	Lang         string    `gorm:"size:8;not null;uniqueIndex:uq_recipe_lang" json:"lang"`
	Title        string    `json:"title"`
	Instructions string    `gorm:"type:text" json:"instructions"`
	Summary      string    `gorm:"type:text" json:"summary,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recipe_ingredient" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_recipe_ingredient" json:"ingredient_id"`
	Amount       *float64  `json:"amount"`
	Unit         *string   `json:"unit"`
	Note         string    `json:"note,omitempty"`
	Position     int       `json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Timestamp
}

func (r *Recipe) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (t *RecipeTranslation) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (ri *RecipeIngredient) BeforeCreate(*gorm.DB) error {
	if ri.ID == uuid.Nil {
		ri.ID = uuid.New()
	}
	return nil
}
