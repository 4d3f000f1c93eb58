package translation

import (
	"context"
	"errors"
	"time"

	"pantry-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TranslationRepository interface {
		CreateJob(ctx context.Context, job *entities.TranslationJob) error
		FindOpenJob(ctx context.Context, entityType string, entityID uuid.UUID, lang string) (*entities.TranslationJob, error)
		GetPendingJobs(ctx context.Context, lang string, limit int) ([]entities.TranslationJob, error)
		SaveJob(ctx context.Context, job *entities.TranslationJob) error
		ResetJobs(ctx context.Context, lang string, statuses []string) (int64, error)
		ResetStaleJobs(ctx context.Context, lang string, staleBefore time.Time) (int64, error)

		GetIngredient(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		GetRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		UpsertIngredientTranslation(ctx context.Context, t *entities.IngredientTranslation) error
		UpsertRecipeTranslation(ctx context.Context, t *entities.RecipeTranslation) error
		DeleteTranslations(ctx context.Context, lang string) error
	}

	translationRepository struct {
		db *gorm.DB
	}
)

func NewTranslationRepository(db *gorm.DB) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) CreateJob(ctx context.Context, job *entities.TranslationJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindOpenJob returns the pending or in-progress job for the entity, or nil.
func (r *translationRepository) FindOpenJob(ctx context.Context, entityType string, entityID uuid.UUID, lang string) (*entities.TranslationJob, error) {
	var job entities.TranslationJob
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ? AND target_lang = ? AND status IN ?",
			entityType, entityID, lang, []string{entities.JobStatusPending, entities.JobStatusInProgress}).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *translationRepository) GetPendingJobs(ctx context.Context, lang string, limit int) ([]entities.TranslationJob, error) {
	var jobs []entities.TranslationJob
	if err := r.db.WithContext(ctx).
		Where("status = ? AND target_lang = ?", entities.JobStatusPending, lang).
		Order("created_at asc, id asc").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *translationRepository) SaveJob(ctx context.Context, job *entities.TranslationJob) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// ResetJobs moves jobs in the given statuses back to pending. No statuses
// means every job of the language.
func (r *translationRepository) ResetJobs(ctx context.Context, lang string, statuses []string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.TranslationJob{}).Where("target_lang = ?", lang)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	res := q.Updates(map[string]any{
		"status":        entities.JobStatusPending,
		"error_message": nil,
		"updated_at":    time.Now().UTC(),
	})
	return res.RowsAffected, res.Error
}

func (r *translationRepository) ResetStaleJobs(ctx context.Context, lang string, staleBefore time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.TranslationJob{}).
		Where("target_lang = ? AND status = ? AND updated_at < ?", lang, entities.JobStatusInProgress, staleBefore.UTC()).
		Updates(map[string]any{
			"status":     entities.JobStatusPending,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *translationRepository) GetIngredient(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *translationRepository) GetRecipe(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *translationRepository) UpsertIngredientTranslation(ctx context.Context, t *entities.IngredientTranslation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ingredient_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(t).Error
}

func (r *translationRepository) UpsertRecipeTranslation(ctx context.Context, t *entities.RecipeTranslation) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "instructions", "updated_at"}),
	}).Create(t).Error
}

func (r *translationRepository) DeleteTranslations(ctx context.Context, lang string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lang = ?", lang).Delete(&entities.IngredientTranslation{}).Error; err != nil {
			return err
		}
		return tx.Where("lang = ?", lang).Delete(&entities.RecipeTranslation{}).Error
	})
}
