package shopping

import (
	"pantry-backend/entities"
	"pantry-backend/pkg/pantry"

	"github.com/google/uuid"
)

const fallbackQuantity = 1.0

// Gap is one shopping-list entry to create for an unmet recipe requirement.
type Gap struct {
	IngredientID uuid.UUID
	Quantity     float64
	Unit         string
}

// PlanBulk returns one gap per recipe ingredient that is not fully
// available. Ingredients with some stock on hand are skipped unless
// includePartial is set. Existing shopping entries are not consulted.
func PlanBulk(lines []entities.RecipeIngredient, stock map[uuid.UUID]pantry.Stock, includePartial bool) []Gap {
	gaps := make([]Gap, 0, len(lines))
	for _, line := range lines {
		req := requirementOf(line)
		avail := pantry.Resolve(req, stock[line.IngredientID])
		if avail.Available {
			continue
		}
		if !includePartial && avail.PantryQuantity > 0 {
			continue
		}
		gaps = append(gaps, gapFor(line, req, avail))
	}
	return gaps
}

// PlanSingle returns the gap for one recipe ingredient regardless of its
// availability.
func PlanSingle(line entities.RecipeIngredient, stock pantry.Stock) Gap {
	req := requirementOf(line)
	return gapFor(line, req, pantry.Resolve(req, stock))
}

// QuantityToAdd prefers the missing amount, then the raw requirement,
// then a single unit.
func QuantityToAdd(req pantry.Requirement, avail pantry.Availability) float64 {
	if avail.Missing != nil && *avail.Missing > 0 {
		return *avail.Missing
	}
	if req.Amount != nil && *req.Amount > 0 {
		return *req.Amount
	}
	return fallbackQuantity
}

func requirementOf(line entities.RecipeIngredient) pantry.Requirement {
	return pantry.Requirement{Amount: line.Amount, Unit: line.Unit}
}

func gapFor(line entities.RecipeIngredient, req pantry.Requirement, avail pantry.Availability) Gap {
	unit := ""
	if line.Unit != nil {
		unit = *line.Unit
	}
	return Gap{
		IngredientID: line.IngredientID,
		Quantity:     QuantityToAdd(req, avail),
		Unit:         unit,
	}
}
