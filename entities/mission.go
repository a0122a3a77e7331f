package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Mission struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DonationID  uuid.UUID  `gorm:"type:uuid;index" json:"donation_id"`
	NGOID       uuid.UUID  `gorm:"type:uuid;index" json:"ngo_id"`
	VolunteerID *uuid.UUID `gorm:"type:uuid;index" json:"volunteer_id,omitempty"`
	Status      string     `gorm:"index" json:"status"` // pending, assigned, picked_up, delivered, cancelled
	Notes       string     `json:"notes,omitempty"`
	Pickup      Location   `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup"`
	Delivery    Location   `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	Donation *Donation `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	NGO      *NGO      `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
	Timestamp
}

func (m *Mission) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
