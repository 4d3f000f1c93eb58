// Package recommendation ranks recipes by how much soon-to-expire pantry
// stock they would use up.
package recommendation

import (
	"sort"
	"time"

	"pantry-backend/entities"

	"github.com/google/uuid"
)

const noMatchDays = 999

type (
	// Expiring is the earliest-expiring pantry batch of one ingredient.
	Expiring struct {
		IngredientID uuid.UUID
		Ingredient   *entities.Ingredient
		ExpiresAt    time.Time
		DaysUntil    int
	}

	Ranked struct {
		Recipe        *entities.Recipe
		Expiring      []Expiring
		ExpiringCount int
		TotalCount    int
		Coverage      float64
		MinDays       int
	}
)

// IndexExpiring keys pantry items by ingredient, keeping the batch with the
// fewest whole days left counted from today. Items without expiry are ignored.
func IndexExpiring(items []entities.PantryItem, today time.Time) map[uuid.UUID]Expiring {
	index := make(map[uuid.UUID]Expiring, len(items))
	for _, item := range items {
		if item.ExpiresAt == nil {
			continue
		}
		days := int(item.ExpiresAt.Sub(today) / (24 * time.Hour))
		if cur, ok := index[item.IngredientID]; ok && cur.DaysUntil <= days {
			continue
		}
		index[item.IngredientID] = Expiring{
			IngredientID: item.IngredientID,
			Ingredient:   item.Ingredient,
			ExpiresAt:    *item.ExpiresAt,
			DaysUntil:    days,
		}
	}
	return index
}

// Rank scores every recipe that uses at least one indexed ingredient and
// orders them by expiring count, then coverage, then urgency. Recipes that
// tie on all three keep their input order. A non-positive limit keeps all.
func Rank(recipes []entities.Recipe, index map[uuid.UUID]Expiring, limit int) []Ranked {
	ranked := make([]Ranked, 0, len(recipes))
	for i := range recipes {
		r := &recipes[i]

		var matched []Expiring
		for _, line := range r.Ingredients {
			if e, ok := index[line.IngredientID]; ok {
				matched = append(matched, e)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sort.SliceStable(matched, func(a, b int) bool { return matched[a].DaysUntil < matched[b].DaysUntil })

		total := len(r.Ingredients)
		coverage := 0.0
		if total > 0 {
			coverage = float64(len(matched)) / float64(total)
		}
		minDays := noMatchDays
		if len(matched) > 0 {
			minDays = matched[0].DaysUntil
		}

		ranked = append(ranked, Ranked{
			Recipe:        r,
			Expiring:      matched,
			ExpiringCount: len(matched),
			TotalCount:    total,
			Coverage:      coverage,
			MinDays:       minDays,
		})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		x, y := ranked[a], ranked[b]
		if x.ExpiringCount != y.ExpiringCount {
			return x.ExpiringCount > y.ExpiringCount
		}
		if x.Coverage != y.Coverage {
			return x.Coverage > y.Coverage
		}
		return x.MinDays < y.MinDays
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
