// Package translation turns pending localization jobs into stored
// ingredient and recipe translations.
package translation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pantry-backend/domain"
	"pantry-backend/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultBatchSize = 20

type (
	// Queue enqueues and processes translation jobs. Jobs move
	// pending -> in_progress -> done|error and only an explicit reset moves
	// them back to pending.
	Queue interface {
		Enqueue(ctx context.Context, entityType string, entityID uuid.UUID) (bool, error)
		RunBatch(ctx context.Context) (domain.TranslationBatchResponse, error)
		ResetJobs(ctx context.Context, statuses ...string) (int64, error)
		RecoverStuck(ctx context.Context, staleBefore time.Time) (int64, error)
		ClearTranslations(ctx context.Context) error
		Lang() string
	}

	QueueConfig struct {
		TargetLang string
		BatchSize  int
	}

	queue struct {
		repository TranslationRepository
		translator Translator
		lang       string
		batchSize  int
		logger     *zap.Logger
	}
)

func NewQueue(repository TranslationRepository, translator Translator, cfg QueueConfig, logger *zap.Logger) Queue {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "es"
	}
	return &queue{
		repository: repository,
		translator: translator,
		lang:       cfg.TargetLang,
		batchSize:  cfg.BatchSize,
		logger:     logger,
	}
}

func (q *queue) Lang() string { return q.lang }

// Enqueue adds a pending job unless one is already pending or in progress
// for the entity. It reports whether a job was created.
func (q *queue) Enqueue(ctx context.Context, entityType string, entityID uuid.UUID) (bool, error) {
	open, err := q.repository.FindOpenJob(ctx, entityType, entityID, q.lang)
	if err != nil {
		return false, err
	}
	if open != nil {
		return false, nil
	}
	job := &entities.TranslationJob{
		EntityType: entityType,
		EntityID:   entityID,
		TargetLang: q.lang,
		Status:     entities.JobStatusPending,
	}
	if err := q.repository.CreateJob(ctx, job); err != nil {
		return false, fmt.Errorf("failed to enqueue translation job: %w", err)
	}
	return true, nil
}

// RunBatch processes up to one batch of pending jobs in order. Each job is
// saved once when it enters in_progress and once in its terminal state. A
// failing job is marked error and the batch moves on.
func (q *queue) RunBatch(ctx context.Context) (domain.TranslationBatchResponse, error) {
	var report domain.TranslationBatchResponse

	jobs, err := q.repository.GetPendingJobs(ctx, q.lang, q.batchSize)
	if err != nil {
		return report, fmt.Errorf("failed to load pending jobs: %w", err)
	}
	if len(jobs) == 0 {
		q.logger.Info("no pending translation jobs", zap.String("lang", q.lang))
		return report, nil
	}
	q.logger.Info("processing translation jobs", zap.Int("count", len(jobs)), zap.String("lang", q.lang))

	for i := range jobs {
		job := &jobs[i]

		job.Status = entities.JobStatusInProgress
		job.ErrorMessage = nil
		if err := q.repository.SaveJob(ctx, job); err != nil {
			return report, fmt.Errorf("failed to mark job %s in progress: %w", job.ID, err)
		}

		if procErr := q.process(ctx, job); procErr != nil {
			msg := procErr.Error()
			job.Status = entities.JobStatusError
			job.ErrorMessage = &msg
			report.Failed++
			q.logger.Error("translation job failed", zap.String("job_id", job.ID.String()), zap.Error(procErr))
		} else {
			job.Status = entities.JobStatusDone
			report.Done++
		}
		report.Processed++

		if err := q.repository.SaveJob(ctx, job); err != nil {
			return report, fmt.Errorf("failed to save job %s: %w", job.ID, err)
		}
	}
	return report, nil
}

func (q *queue) process(ctx context.Context, job *entities.TranslationJob) error {
	switch job.EntityType {
	case domain.EntityTypeIngredient:
		return q.translateIngredient(ctx, job.EntityID)
	case domain.EntityTypeRecipe:
		return q.translateRecipe(ctx, job.EntityID)
	default:
		return fmt.Errorf("Unknown entity_type: %s", job.EntityType)
	}
}

func (q *queue) translateIngredient(ctx context.Context, id uuid.UUID) error {
	ing, err := q.repository.GetIngredient(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("ingredient %s not found", id)
		}
		return err
	}

	input := ing.DisplayName
	if input == "" {
		input = ing.CanonicalName
	}
	name, err := q.translator.Translate(ctx, input, q.lang)
	if err != nil {
		return err
	}

	return q.repository.UpsertIngredientTranslation(ctx, &entities.IngredientTranslation{
		IngredientID: ing.ID,
		Lang:         q.lang,
		Name:         name,
		IsVerified:   false,
	})
}

func (q *queue) translateRecipe(ctx context.Context, id uuid.UUID) error {
	r, err := q.repository.GetRecipe(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("recipe %s not found", id)
		}
		return err
	}

	title, err := q.translator.Translate(ctx, r.TitleOriginal, q.lang)
	if err != nil {
		return err
	}
	instructions, err := q.translator.Translate(ctx, r.InstructionsRaw, q.lang)
	if err != nil {
		return err
	}

	return q.repository.UpsertRecipeTranslation(ctx, &entities.RecipeTranslation{
		RecipeID:     r.ID,
		Lang:         q.lang,
		Title:        title,
		Instructions: instructions,
	})
}

// ResetJobs moves jobs back to pending. Without statuses every job of the
// queue language is reset.
func (q *queue) ResetJobs(ctx context.Context, statuses ...string) (int64, error) {
	n, err := q.repository.ResetJobs(ctx, q.lang, statuses)
	if err != nil {
		return 0, fmt.Errorf("failed to reset translation jobs: %w", err)
	}
	q.logger.Info("translation jobs reset", zap.Int64("count", n), zap.Strings("statuses", statuses))
	return n, nil
}

// RecoverStuck returns in_progress jobs not touched since staleBefore to
// pending.
func (q *queue) RecoverStuck(ctx context.Context, staleBefore time.Time) (int64, error) {
	n, err := q.repository.ResetStaleJobs(ctx, q.lang, staleBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to recover stuck translation jobs: %w", err)
	}
	q.logger.Info("stuck translation jobs recovered", zap.Int64("count", n))
	return n, nil
}

func (q *queue) ClearTranslations(ctx context.Context) error {
	if err := q.repository.DeleteTranslations(ctx, q.lang); err != nil {
		return fmt.Errorf("failed to clear translations: %w", err)
	}
	return nil
}
