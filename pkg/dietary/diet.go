// Package dietary decides recipe compatibility with a user's diet and
// intolerances.
package dietary

import (
	"sort"
	"strings"
)

// Rule is the set of recipe diet labels a user diet accepts. It is either
// AllowAll or Restricted.
type Rule interface {
	accepts(recipeDiets []string) bool
}

// AllowAll accepts every recipe, labelled or not.
type AllowAll struct{}

func (AllowAll) accepts([]string) bool { return true }

// Restricted accepts recipes carrying at least one of Labels. A recipe
// without labels is rejected.
type Restricted struct {
	Labels map[string]struct{}
}

func NewRestricted(labels ...string) Restricted {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[strings.ToLower(l)] = struct{}{}
	}
	return Restricted{Labels: set}
}

func (r Restricted) accepts(recipeDiets []string) bool {
	for _, d := range recipeDiets {
		if _, ok := r.Labels[strings.ToLower(strings.TrimSpace(d))]; ok {
			return true
		}
	}
	return false
}

var compatibility = map[string]Rule{
	"omnivore":    AllowAll{},
	"vegan":       NewRestricted("vegan"),
	"vegetarian":  NewRestricted("vegetarian", "vegan"),
	"pescatarian": NewRestricted("pescatarian", "vegetarian", "vegan"),
	"keto":        NewRestricted("ketogenic", "keto"),
	"paleo":       NewRestricted("paleo", "whole30"),
}

// RuleFor returns the rule for a user diet. Empty and unrecognized diets
// map to AllowAll.
func RuleFor(userDiet string) Rule {
	rule, ok := compatibility[strings.ToLower(strings.TrimSpace(userDiet))]
	if !ok {
		return AllowAll{}
	}
	return rule
}

// IsCompatible reports whether a recipe with the given diet labels fits
// userDiet.
func IsCompatible(recipeDiets []string, userDiet string) bool {
	return RuleFor(userDiet).accepts(recipeDiets)
}

// IntoleranceWarnings returns the user intolerances the recipe declares,
// lowercased and sorted.
func IntoleranceWarnings(recipeIntolerances, userIntolerances []string) []string {
	if len(recipeIntolerances) == 0 || len(userIntolerances) == 0 {
		return []string{}
	}
	user := make(map[string]struct{}, len(userIntolerances))
	for _, i := range userIntolerances {
		user[strings.ToLower(strings.TrimSpace(i))] = struct{}{}
	}
	seen := make(map[string]struct{})
	warnings := []string{}
	for _, i := range recipeIntolerances {
		key := strings.ToLower(strings.TrimSpace(i))
		if _, ok := user[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		warnings = append(warnings, key)
	}
	sort.Strings(warnings)
	return warnings
}
