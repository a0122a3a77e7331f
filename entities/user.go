package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `gorm:"index" json:"role"` // donor, volunteer, ngo
	Phone    string    `json:"phone,omitempty"`
	Location Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	NGO       *NGO       `gorm:"foreignKey:UserID" json:"ngo,omitempty"`
	Volunteer *Volunteer `gorm:"foreignKey:UserID" json:"volunteer,omitempty"`
	Timestamp
}

type NGO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	Verified           bool      `json:"verified"`
	Location           Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Timestamp
}

type Volunteer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	VehicleType string    `json:"vehicle_type,omitempty"`
	Available   bool      `json:"available"`
	Location    Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Timestamp
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (n *NGO) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

func (v *Volunteer) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
