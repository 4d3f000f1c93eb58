package pantry

import (
	"context"
	"errors"
	"time"

	"pantry-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		CreatePantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id uuid.UUID) (*entities.PantryItem, error)
		FindPantryItem(ctx context.Context, userID, ingredientID uuid.UUID, unit string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id uuid.UUID) error
		GetPantryItems(ctx context.Context, userID uuid.UUID) ([]entities.PantryItem, error)
		GetPantryItemsByIngredients(ctx context.Context, userID uuid.UUID, ingredientIDs []uuid.UUID) ([]entities.PantryItem, error)
		GetPantryItemsByExpiryRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.PantryItem, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) CreatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id uuid.UUID) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Preload("Ingredient.Translations").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindPantryItem returns nil without error when the user holds no line in that unit.
func (r *pantryRepository) FindPantryItem(ctx context.Context, userID, ingredientID uuid.UUID, unit string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ? AND unit = ?", userID, ingredientID, unit).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Omit("Ingredient", "User").Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetPantryItems(ctx context.Context, userID uuid.UUID) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	if err := r.db.WithContext(ctx).
		Preload("Ingredient.Translations").
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetPantryItemsByIngredients returns items in creation order, which fixes
// the order units are first seen when stock is grouped.
func (r *pantryRepository) GetPantryItemsByIngredients(ctx context.Context, userID uuid.UUID, ingredientIDs []uuid.UUID) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	if len(ingredientIDs) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id IN ?", userID, ingredientIDs).
		Order("created_at asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetPantryItemsByExpiryRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.PantryItem, error) {
	var items []entities.PantryItem
	if err := r.db.WithContext(ctx).
		Preload("Ingredient.Translations").
		Where("user_id = ? AND expires_at IS NOT NULL AND expires_at >= ? AND expires_at <= ?", userID, start.UTC(), end.UTC()).
		Order("expires_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
