package shopping

import (
	"context"

	"pantry-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		CreateShoppingItems(ctx context.Context, items []*entities.ShoppingListItem) error
		GetShoppingItemByID(ctx context.Context, id uuid.UUID) (*entities.ShoppingListItem, error)
		GetShoppingItems(ctx context.Context, userID uuid.UUID, onlyPending bool) ([]entities.ShoppingListItem, error)
		UpdateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error
		DeleteShoppingItem(ctx context.Context, id uuid.UUID) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

// CreateShoppingItems inserts all items or none of them.
func (r *shoppingRepository) CreateShoppingItems(ctx context.Context, items []*entities.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			if err := tx.Omit("Ingredient").Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shoppingRepository) GetShoppingItemByID(ctx context.Context, id uuid.UUID) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Preload("Ingredient.Translations").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepository) GetShoppingItems(ctx context.Context, userID uuid.UUID, onlyPending bool) ([]entities.ShoppingListItem, error) {
	var items []entities.ShoppingListItem
	q := r.db.WithContext(ctx).Preload("Ingredient.Translations").Where("user_id = ?", userID)
	if onlyPending {
		q = q.Where("is_checked = ?", false)
	}
	if err := q.Order("created_at asc, id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *shoppingRepository) UpdateShoppingItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Omit("Ingredient").Save(item).Error
}

func (r *shoppingRepository) DeleteShoppingItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingListItem{}).Error
}
