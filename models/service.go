package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          string    `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
	Duration    int       `gorm:"not null"` // in minutes
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	CategoryID  *string   `gorm:"index"`
	CreatedBy   string    `gorm:"index;not null"`
	State       Lifecycle `gorm:"type:varchar(16);not null;default:'ACTIVE'"`

	CreatedAt time.Time

	Category *ServiceCategory `gorm:"foreignKey:CategoryID"`
	Creator  *User            `gorm:"foreignKey:CreatedBy"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return
}
