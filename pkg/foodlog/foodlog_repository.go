package foodlog

import (
	"context"
	"time"

	"pantry-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodLogRepository interface {
		CreateFoodLog(ctx context.Context, log *entities.UserFoodLog) error
		GetFoodLogByID(ctx context.Context, id uuid.UUID) (*entities.UserFoodLog, error)
		GetFoodLogsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.UserFoodLog, error)
		DeleteFoodLog(ctx context.Context, id uuid.UUID) error
	}

	foodLogRepository struct {
		db *gorm.DB
	}
)

func NewFoodLogRepository(db *gorm.DB) FoodLogRepository {
	return &foodLogRepository{db: db}
}

func (r *foodLogRepository) CreateFoodLog(ctx context.Context, log *entities.UserFoodLog) error {
	return r.db.WithContext(ctx).Omit("Recipe", "Ingredient").Create(log).Error
}

func (r *foodLogRepository) GetFoodLogByID(ctx context.Context, id uuid.UUID) (*entities.UserFoodLog, error) {
	var log entities.UserFoodLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// GetFoodLogsBetween returns the user's logs with logged_at in [start, end).
func (r *foodLogRepository) GetFoodLogsBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entities.UserFoodLog, error) {
	var logs []entities.UserFoodLog
	if err := r.db.WithContext(ctx).
		Preload("Recipe.Translations").
		Preload("Ingredient.Translations").
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start.UTC(), end.UTC()).
		Order("logged_at asc, created_at asc").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *foodLogRepository) DeleteFoodLog(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.UserFoodLog{}).Error
}
