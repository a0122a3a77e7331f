package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donation struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DonorID      uuid.UUID `gorm:"type:uuid;index" json:"donor_id"`
	FoodName     string    `json:"food_name"`
	FoodCategory string    `json:"food_category"`
	Description  string    `json:"description"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	ExpiryDate   time.Time `json:"expiry_date"`
	Status       string    `gorm:"index" json:"status"` // available, requested, picked_up, delivered, cancelled
	ImageURL     string    `json:"image_url,omitempty"`
	ImageKey     string    `json:"-"`
	Confidence   float64   `json:"confidence,omitempty"`
	Pickup       Location  `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup"`

	Donor *User `gorm:"foreignKey:DonorID" json:"-"`
	Timestamp
}

func (d *Donation) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
