package domain

import "errors"

const (
	EntityTypeIngredient = "ingredient"
	EntityTypeRecipe     = "recipe"
)

var (
	MessageSuccessRunTranslations     = "translation batch processed"
	MessageSuccessResetTranslations   = "translation jobs reset"
	MessageSuccessRecoverTranslations = "stuck translation jobs recovered"

	MessageFailedRunTranslations     = "failed to process translation batch"
	MessageFailedResetTranslations   = "failed to reset translation jobs"
	MessageFailedRecoverTranslations = "failed to recover translation jobs"
)

type (
	ResetTranslationsRequest struct {
		Lang              string   `json:"lang"`
		Statuses          []string `json:"statuses" validate:"dive,oneof=pending in_progress done error"`
		ClearTranslations bool     `json:"clear_translations"`
	}

	RecoverTranslationsRequest struct {
		Lang             string `json:"lang"`
		OlderThanMinutes int    `json:"older_than_minutes" validate:"min=0"`
	}

	TranslationBatchResponse struct {
		Processed int `json:"processed"`
		Done      int `json:"done"`
		Failed    int `json:"failed"`
	}

	TranslationResetResponse struct {
		Affected int64 `json:"affected"`
	}
)

var ErrUnsupportedLang = errors.New("translation language does not match the configured target language")
