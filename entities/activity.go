package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserActivity struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Type        string    `gorm:"type:varchar(20)" json:"type"` // signup, login, donation, pickup, delivery
	Description string    `json:"description"`
	OccurredAt  time.Time `gorm:"index" json:"timestamp"`
	Timestamp
}

func (a *UserActivity) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now()
	}
	return nil
}
