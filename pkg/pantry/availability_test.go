package pantry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantry-backend/entities"
)

func ptr[T any](v T) *T { return &v }

func TestResolve(t *testing.T) {
	t.Run("no stock", func(t *testing.T) {
		got := Resolve(Requirement{Amount: ptr(200.0), Unit: ptr("g")}, nil)
		assert.False(t, got.Available)
		assert.Zero(t, got.PantryQuantity)
		assert.Nil(t, got.PantryUnit)
		require.NotNil(t, got.Missing)
		assert.Equal(t, 200.0, *got.Missing)
	})

	t.Run("no stock and no amount", func(t *testing.T) {
		got := Resolve(Requirement{}, nil)
		assert.False(t, got.Available)
		assert.Nil(t, got.Missing)
	})

	t.Run("same unit short", func(t *testing.T) {
		got := Resolve(Requirement{Amount: ptr(200.0), Unit: ptr("g")}, Stock{{Unit: "g", Quantity: 150}})
		assert.False(t, got.Available)
		require.NotNil(t, got.Missing)
		assert.Equal(t, 50.0, *got.Missing)
	})

	t.Run("same unit enough", func(t *testing.T) {
		got := Resolve(Requirement{Amount: ptr(200.0), Unit: ptr("g")}, Stock{{Unit: "ml", Quantity: 10}, {Unit: "g", Quantity: 250}})
		assert.True(t, got.Available)
		assert.Equal(t, 250.0, got.PantryQuantity)
		assert.Equal(t, "g", *got.PantryUnit)
		assert.Nil(t, got.Missing)
	})

	t.Run("mismatched unit gets no credit", func(t *testing.T) {
		got := Resolve(Requirement{Amount: ptr(200.0), Unit: ptr("g")}, Stock{{Unit: "ml", Quantity: 500}, {Unit: "pcs", Quantity: 2}})
		assert.False(t, got.Available)
		assert.Equal(t, 500.0, got.PantryQuantity)
		assert.Equal(t, "ml", *got.PantryUnit)
		require.NotNil(t, got.Missing)
		assert.Equal(t, 200.0, *got.Missing)
	})

	t.Run("zero amount never reports missing", func(t *testing.T) {
		for _, stock := range []Stock{nil, {{Unit: "g", Quantity: 1}}, {{Unit: "ml", Quantity: 1}}} {
			got := Resolve(Requirement{Amount: ptr(0.0), Unit: ptr("g")}, stock)
			assert.Nil(t, got.Missing)
		}
		assert.True(t, Resolve(Requirement{Amount: ptr(0.0), Unit: ptr("g")}, Stock{{Unit: "g", Quantity: 0}}).Available)
		assert.False(t, Resolve(Requirement{Amount: ptr(0.0), Unit: ptr("g")}, nil).Available)
		assert.False(t, Resolve(Requirement{Amount: ptr(0.0), Unit: ptr("g")}, Stock{{Unit: "ml", Quantity: 1}}).Available)
	})

	t.Run("absent unit matches empty unit stock", func(t *testing.T) {
		got := Resolve(Requirement{Amount: ptr(2.0)}, Stock{{Unit: "", Quantity: 3}})
		assert.True(t, got.Available)
	})
}

func TestGroupStock(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	grouped := GroupStock([]entities.PantryItem{
		{IngredientID: a, Unit: "kg", Quantity: 2},
		{IngredientID: a, Unit: "pcs", Quantity: 3},
		{IngredientID: a, Unit: "kg", Quantity: 0.5},
		{IngredientID: b, Unit: "g", Quantity: 100},
	})

	assert.Equal(t, Stock{{Unit: "kg", Quantity: 2.5}, {Unit: "pcs", Quantity: 3}}, grouped[a])
	assert.Equal(t, Stock{{Unit: "g", Quantity: 100}}, grouped[b])
	assert.Empty(t, grouped[uuid.New()])
}
