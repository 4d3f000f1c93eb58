// Package naming resolves the display string of a localized entity.
package naming

import (
	"pantry-backend/entities"
)

// Localized is one localized name of an entity.
type Localized struct {
	Lang string
	Name string
}

// Resolve returns the localized name for lang when it is present and
// non-empty, otherwise the first non-empty fallback. The last fallback is
// returned as-is when every candidate is empty.
func Resolve(lang string, localized []Localized, fallbacks ...string) string {
	for _, l := range localized {
		if l.Lang == lang && l.Name != "" {
			return l.Name
		}
	}
	for _, f := range fallbacks {
		if f != "" {
			return f
		}
	}
	if len(fallbacks) == 0 {
		return ""
	}
	return fallbacks[len(fallbacks)-1]
}

func IngredientName(ing *entities.Ingredient, lang string) string {
	if ing == nil {
		return ""
	}
	localized := make([]Localized, 0, len(ing.Translations))
	for _, t := range ing.Translations {
		localized = append(localized, Localized{Lang: t.Lang, Name: t.Name})
	}
	return Resolve(lang, localized, ing.DisplayName, ing.CanonicalName)
}

func RecipeTitle(r *entities.Recipe, lang string) string {
	localized := make([]Localized, 0, len(r.Translations))
	for _, t := range r.Translations {
		localized = append(localized, Localized{Lang: t.Lang, Name: t.Title})
	}
	return Resolve(lang, localized, r.TitleOriginal)
}

func RecipeInstructions(r *entities.Recipe, lang string) string {
	localized := make([]Localized, 0, len(r.Translations))
	for _, t := range r.Translations {
		localized = append(localized, Localized{Lang: t.Lang, Name: t.Instructions})
	}
	return Resolve(lang, localized, r.InstructionsRaw)
}
