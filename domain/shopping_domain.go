package domain

import "time"

var (
	MessageSuccessGetShoppingList    = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem    = "shopping item added successfully"
	MessageSuccessUpdateShoppingItem = "shopping item updated successfully"
	MessageSuccessDeleteShoppingItem = "shopping item deleted successfully"
	MessageSuccessAddMissing         = "missing ingredients added to shopping list"

	MessageFailedGetShoppingList    = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem    = "failed to add shopping item"
	MessageFailedUpdateShoppingItem = "failed to update shopping item"
	MessageFailedDeleteShoppingItem = "failed to delete shopping item"
	MessageFailedAddMissing         = "failed to add missing ingredients"

	ErrShoppingItemNotFound = notFound("shopping list item not found")
)

type (
	CreateShoppingItemRequest struct {
		IngredientID   string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity       float64 `json:"quantity" validate:"gte=0"`
		Unit           string  `json:"unit"`
		LinkedRecipeID string  `json:"linked_recipe_id" validate:"omitempty,uuid"`
	}

	UpdateShoppingItemRequest struct {
		Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
		Unit     *string  `json:"unit"`
		IsDone   *bool    `json:"is_done"`
	}

	AddMissingRequest struct {
		IncludePartiallyAvailable *bool `json:"include_partially_available"`
	}

	AddRecipeIngredientRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
	}

	ShoppingItemResponse struct {
		ID             string    `json:"id"`
		IngredientID   string    `json:"ingredient_id"`
		IngredientName string    `json:"ingredient_name"`
		Quantity       float64   `json:"quantity"`
		Unit           string    `json:"unit"`
		LinkedRecipeID *string   `json:"linked_recipe_id"`
		IsDone         bool      `json:"is_done"`
		CreatedAt      time.Time `json:"created_at"`
	}

	AddMissingResponse struct {
		AddedCount int                    `json:"added_count"`
		Items      []ShoppingItemResponse `json:"items"`
	}
)
