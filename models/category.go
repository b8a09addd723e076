package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceCategory groups services for the catalog. Name is unique
// among ACTIVE categories only, so a disabled name can be reused.
type ServiceCategory struct {
	ID          string    `gorm:"primaryKey"`
	Name        string    `gorm:"not null;index"`
	Description string
	Color       string    `gorm:"type:varchar(16)"` // display hint, e.g. "#F472B6"
	State       Lifecycle `gorm:"type:varchar(16);not null;default:'ACTIVE'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Services []Service `gorm:"foreignKey:CategoryID"`
}

func (c *ServiceCategory) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return
}
