package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkingHours holds one opening window per weekday. A nil StaffID is
// the salon-wide default; rows with a StaffID override it for that
// staff member. Times are wall-clock "HH:MM" strings.
type WorkingHours struct {
	ID        string  `gorm:"primaryKey"`
	DayOfWeek int     `gorm:"not null"` // 0 = Sunday .. 6 = Saturday
	StartTime string  `gorm:"type:varchar(5);not null"`
	EndTime   string  `gorm:"type:varchar(5);not null"`
	StaffID   *string `gorm:"index"`

	Staff *User `gorm:"foreignKey:StaffID"`
}

func (WorkingHours) TableName() string { return "working_hours" }

func (w *WorkingHours) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return
}
