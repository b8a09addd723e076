package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer of the salon. Email is optional but must be unique when
// present; the partial unique index lets multiple rows omit it.
type Customer struct {
	ID          string     `gorm:"primaryKey"`
	FirstName   string     `gorm:"not null"`
	LastName    string     `gorm:"not null"`
	Email       *string    `gorm:"uniqueIndex"`
	Phone       string
	Address     string
	DateOfBirth *time.Time
	Notes       string
	CreatedBy   string     `gorm:"index;not null"`
	State       Lifecycle  `gorm:"type:varchar(16);not null;default:'ACTIVE'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Creator      *User         `gorm:"foreignKey:CreatedBy"`
	Appointments []Appointment `gorm:"foreignKey:CustomerID"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return
}
