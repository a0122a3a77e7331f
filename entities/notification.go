package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Type       string    `gorm:"type:varchar(10)" json:"type"` // success, error, warning, info
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	DurationMs int       `json:"duration_ms"`
	ExpiresAt  time.Time `gorm:"index" json:"expires_at"`
	Dismissed  bool      `json:"dismissed"`
	Timestamp
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

type UserSetting struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_setting" json:"user_id"`
	Section string    `gorm:"uniqueIndex:idx_user_setting" json:"section"`
	Key     string    `gorm:"uniqueIndex:idx_user_setting" json:"key"`
	Value   string    `json:"value"` // JSON encoded
	Timestamp
}

func (s *UserSetting) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
