package domain

import "time"

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"

	ErrPantryItemNotFound = notFound("pantry item not found")
	ErrPantryItemExists   = conflict("pantry item already exists for this ingredient and unit, update it instead")
	ErrIngredientNotFound = notFound("ingredient not found")
)

type (
	CreatePantryItemRequest struct {
		IngredientID string     `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64    `json:"quantity" validate:"gte=0"`
		Unit         string     `json:"unit" validate:"required"`
		ExpiresAt    *time.Time `json:"expires_at"`
		Note         string     `json:"note"`
	}

	UpdatePantryItemRequest struct {
		Quantity  *float64   `json:"quantity" validate:"omitempty,gte=0"`
		Unit      *string    `json:"unit" validate:"omitempty,min=1"`
		ExpiresAt *time.Time `json:"expires_at"`
		Note      *string    `json:"note"`
	}

	PantryItemResponse struct {
		ID             string     `json:"id"`
		IngredientID   string     `json:"ingredient_id"`
		IngredientName string     `json:"ingredient_name"`
		Quantity       float64    `json:"quantity"`
		Unit           string     `json:"unit"`
		ExpiresAt      *time.Time `json:"expires_at"`
		Note           string     `json:"note,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}
)
