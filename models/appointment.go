package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentPending    AppointmentStatus = "PENDING"
	AppointmentConfirmed  AppointmentStatus = "CONFIRMED"
	AppointmentInProgress AppointmentStatus = "IN_PROGRESS"
	AppointmentCompleted  AppointmentStatus = "COMPLETED"
	AppointmentCancelled  AppointmentStatus = "CANCELLED"
	AppointmentNoShow     AppointmentStatus = "NO_SHOW"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentInProgress,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// Open reports whether the appointment still blocks its customer from
// being disabled.
func (s AppointmentStatus) Open() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentInProgress:
		return true
	}
	return false
}

// Appointment books a customer into a service time slot. Price is a
// snapshot of the service price at booking time; later catalog edits
// must not change it. Rows are removed physically, never soft-deleted.
type Appointment struct {
	ID        string            `gorm:"primaryKey"`
	StartTime time.Time         `gorm:"index;not null"`
	EndTime   time.Time         `gorm:"not null"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'CONFIRMED'"`

	CustomerID string  `gorm:"index;not null"`
	ServiceID  string  `gorm:"index;not null"`
	StaffID    *string `gorm:"index"`
	UserID     string  `gorm:"index;not null"` // who recorded the booking

	Price float64 `gorm:"type:decimal(10,2);not null"`
	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Service  *Service  `gorm:"foreignKey:ServiceID"`
	Staff    *User     `gorm:"foreignKey:StaffID"`
	User     *User     `gorm:"foreignKey:UserID"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return
}
