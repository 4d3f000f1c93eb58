package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusDone       = "done"
	JobStatusError      = "error"
)

type TranslationJob struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EntityType   string    `gorm:"not null;index:idx_job_entity" json:"entity_type"`
	EntityID     uuid.UUID `gorm:"type:uuid;not null;index:idx_job_entity" json:"entity_id"`
	TargetLang   string    `gorm:"size:8;not null" json:"target_lang"`
	Status       string    `gorm:"not null;default:pending;index" json:"status"`
	ErrorMessage *string   `gorm:"type:text" json:"error_message"`
	Timestamp
}

func (j *TranslationJob) BeforeCreate(*gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
