package pantry

import (
	"pantry-backend/entities"

	"github.com/google/uuid"
)

type (
	// StockLine is the summed quantity a user holds of one ingredient in one unit.
	StockLine struct {
		Unit     string
		Quantity float64
	}

	// Stock lists stock lines in the order units were first seen.
	Stock []StockLine

	// Requirement is what a recipe asks for. Either field may be absent.
	Requirement struct {
		Amount *float64
		Unit   *string
	}

	Availability struct {
		Available      bool
		PantryQuantity float64
		PantryUnit     *string
		Missing        *float64
	}
)

func (s Stock) quantityIn(unit string) (float64, bool) {
	for _, line := range s {
		if line.Unit == unit {
			return line.Quantity, true
		}
	}
	return 0, false
}

// GroupStock sums pantry quantities per ingredient and unit.
func GroupStock(items []entities.PantryItem) map[uuid.UUID]Stock {
	grouped := make(map[uuid.UUID]Stock)
	for _, item := range items {
		stock := grouped[item.IngredientID]
		merged := false
		for i := range stock {
			if stock[i].Unit == item.Unit {
				stock[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			stock = append(stock, StockLine{Unit: item.Unit, Quantity: item.Quantity})
		}
		grouped[item.IngredientID] = stock
	}
	return grouped
}

// Resolve compares a requirement against the stock held for the same
// ingredient. Units are never converted: stock in another unit does not
// offset the requirement and only the first unit is surfaced for display.
func Resolve(req Requirement, stock Stock) Availability {
	amount := 0.0
	if req.Amount != nil {
		amount = *req.Amount
	}
	unit := ""
	if req.Unit != nil {
		unit = *req.Unit
	}

	if len(stock) == 0 {
		return Availability{Missing: positive(amount)}
	}

	if qty, ok := stock.quantityIn(unit); ok {
		u := unit
		return Availability{
			Available:      qty >= amount,
			PantryQuantity: qty,
			PantryUnit:     &u,
			Missing:        positive(amount - qty),
		}
	}

	first := stock[0]
	return Availability{
		PantryQuantity: first.Quantity,
		PantryUnit:     &first.Unit,
		Missing:        positive(amount),
	}
}

func positive(v float64) *float64 {
	if v <= 0 {
		return nil
	}
	return &v
}
