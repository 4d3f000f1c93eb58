package translation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pantry-backend/domain"
	"pantry-backend/entities"
	"pantry-backend/internal/testutil"
)

type fakeTranslator struct {
	fail  map[string]bool
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, text, lang string) (string, error) {
	f.calls++
	if f.fail[text] {
		return "", errors.New("provider unavailable")
	}
	if text == "" {
		return "", nil
	}
	return lang + ":" + strings.ToLower(text), nil
}

func TestQueue(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := NewTranslationRepository(db)
	tr := &fakeTranslator{fail: map[string]bool{"Broken Soup": true}}
	q := NewQueue(repo, tr, QueueConfig{TargetLang: "es"}, zaptest.NewLogger(t))

	tomato := &entities.Ingredient{CanonicalName: "tomato", DisplayName: "Tomato"}
	require.NoError(t, db.Create(tomato).Error)
	salad := &entities.Recipe{Source: "spoonacular", ExternalID: "1", TitleOriginal: "Salad", InstructionsRaw: "Mix"}
	require.NoError(t, db.Create(salad).Error)
	broken := &entities.Recipe{Source: "spoonacular", ExternalID: "2", TitleOriginal: "Broken Soup"}
	require.NoError(t, db.Create(broken).Error)

	t.Run("enqueue is idempotent while open", func(t *testing.T) {
		created, err := q.Enqueue(ctx, domain.EntityTypeIngredient, tomato.ID)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = q.Enqueue(ctx, domain.EntityTypeIngredient, tomato.ID)
		require.NoError(t, err)
		assert.False(t, created)

		for _, id := range []uuid.UUID{salad.ID, broken.ID} {
			_, err := q.Enqueue(ctx, domain.EntityTypeRecipe, id)
			require.NoError(t, err)
		}
		require.NoError(t, repo.CreateJob(ctx, &entities.TranslationJob{
			EntityType: "menu", EntityID: uuid.New(), TargetLang: "es", Status: entities.JobStatusPending,
		}))
		require.NoError(t, repo.CreateJob(ctx, &entities.TranslationJob{
			EntityType: domain.EntityTypeRecipe, EntityID: uuid.New(), TargetLang: "es", Status: entities.JobStatusPending,
		}))
	})

	t.Run("run batch", func(t *testing.T) {
		report, err := q.RunBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.TranslationBatchResponse{Processed: 5, Done: 2, Failed: 3}, report)

		var it entities.IngredientTranslation
		require.NoError(t, db.Where("ingredient_id = ? AND lang = ?", tomato.ID, "es").First(&it).Error)
		assert.Equal(t, "es:tomato", it.Name)
		assert.False(t, it.IsVerified)

		var rt entities.RecipeTranslation
		require.NoError(t, db.Where("recipe_id = ? AND lang = ?", salad.ID, "es").First(&rt).Error)
		assert.Equal(t, "es:salad", rt.Title)
		assert.Equal(t, "es:mix", rt.Instructions)

		var failed []entities.TranslationJob
		require.NoError(t, db.Where("status = ?", entities.JobStatusError).Find(&failed).Error)
		require.Len(t, failed, 3)
		messages := map[string]bool{}
		for _, j := range failed {
			require.NotNil(t, j.ErrorMessage)
			messages[*j.ErrorMessage] = true
		}
		assert.True(t, messages["provider unavailable"])
		assert.True(t, messages["Unknown entity_type: menu"])
	})

	t.Run("failed jobs are not picked up again", func(t *testing.T) {
		calls := tr.calls
		report, err := q.RunBatch(ctx)
		require.NoError(t, err)
		assert.Zero(t, report.Processed)
		assert.Equal(t, calls, tr.calls)
	})

	t.Run("reset errored jobs and retranslate", func(t *testing.T) {
		n, err := q.ResetJobs(ctx, entities.JobStatusError)
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)

		var pending []entities.TranslationJob
		require.NoError(t, db.Where("status = ?", entities.JobStatusPending).Find(&pending).Error)
		for _, j := range pending {
			assert.Nil(t, j.ErrorMessage)
		}

		delete(tr.fail, "Broken Soup")
		report, err := q.RunBatch(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Done)
		assert.Equal(t, 2, report.Failed)

		var rt entities.RecipeTranslation
		require.NoError(t, db.Where("recipe_id = ?", broken.ID).First(&rt).Error)
		assert.Equal(t, "es:broken soup", rt.Title)
		assert.Empty(t, rt.Instructions)
	})

	t.Run("upsert overwrites existing translation", func(t *testing.T) {
		require.NoError(t, db.Model(&entities.Ingredient{}).Where("id = ?", tomato.ID).Update("display_name", "Roma Tomato").Error)
		_, err := q.ResetJobs(ctx, entities.JobStatusDone)
		require.NoError(t, err)
		_, err = q.RunBatch(ctx)
		require.NoError(t, err)

		var rows []entities.IngredientTranslation
		require.NoError(t, db.Where("ingredient_id = ?", tomato.ID).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, "es:roma tomato", rows[0].Name)
	})

	t.Run("recover stuck jobs", func(t *testing.T) {
		stuck := &entities.TranslationJob{
			EntityType: domain.EntityTypeIngredient, EntityID: tomato.ID, TargetLang: "es", Status: entities.JobStatusInProgress,
		}
		require.NoError(t, repo.CreateJob(ctx, stuck))

		n, err := q.RecoverStuck(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = q.RecoverStuck(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		var job entities.TranslationJob
		require.NoError(t, db.First(&job, "id = ?", stuck.ID).Error)
		assert.Equal(t, entities.JobStatusPending, job.Status)
	})

	t.Run("clear translations", func(t *testing.T) {
		require.NoError(t, q.ClearTranslations(ctx))
		var count int64
		require.NoError(t, db.Model(&entities.IngredientTranslation{}).Count(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, db.Model(&entities.RecipeTranslation{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
