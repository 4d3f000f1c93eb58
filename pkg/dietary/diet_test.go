package dietary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCompatible(t *testing.T) {
	cases := []struct {
		name   string
		diets  []string
		user   string
		expect bool
	}{
		{"vegan recipe for vegetarian", []string{"vegan"}, "vegetarian", true},
		{"unlabelled recipe for vegan", []string{}, "vegan", false},
		{"omnivore accepts anything", []string{"beef"}, "omnivore", true},
		{"omnivore case insensitive", nil, "OMNIVORE", true},
		{"unknown diet fails open", []string{"beef"}, "martian", true},
		{"no diet", nil, "", true},
		{"keto alias", []string{"Ketogenic"}, "keto", true},
		{"paleo whole30", []string{"whole30"}, "paleo", true},
		{"pescatarian rejects unrelated labels", []string{"gluten free"}, "pescatarian", false},
		{"vegetarian recipe for vegan", []string{"vegetarian"}, "vegan", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, IsCompatible(tc.diets, tc.user))
		})
	}
}

func TestRuleFor(t *testing.T) {
	assert.IsType(t, AllowAll{}, RuleFor("omnivore"))
	assert.IsType(t, AllowAll{}, RuleFor("unknown"))
	assert.IsType(t, Restricted{}, RuleFor("Vegan"))
}

func TestIntoleranceWarnings(t *testing.T) {
	assert.Equal(t, []string{"dairy"}, IntoleranceWarnings([]string{"gluten", "dairy"}, []string{"DAIRY"}))
	assert.Equal(t, []string{"dairy", "gluten"}, IntoleranceWarnings([]string{"Gluten", "dairy", "gluten"}, []string{"gluten", "dairy"}))
	assert.Empty(t, IntoleranceWarnings(nil, []string{"dairy"}))
	assert.Empty(t, IntoleranceWarnings([]string{"dairy"}, nil))
	assert.Empty(t, IntoleranceWarnings([]string{"egg"}, []string{"dairy"}))
}
