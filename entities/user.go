package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key" json:"id"`
	Email        string                      `gorm:"uniqueIndex;not null" json:"email"`
	Name         string                      `json:"name"`
	Role         string                      `gorm:"default:user" json:"role"`
	DietType     *string                     `json:"diet_type"`
	Intolerances datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"intolerances"`
	Timestamp
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
