package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
	RoleUser  Role = "USER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleUser:
		return true
	}
	return false
}

// User is an internal account mapped from the identity provider.
// Rows are never removed; Deleted hides an account permanently while
// Enabled can be toggled back by an admin.
type User struct {
	ID      string `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Email   string `gorm:"uniqueIndex;not null"`
	Image   string
	Role    Role   `gorm:"type:varchar(20);not null;default:'USER'"`
	Enabled bool   `gorm:"default:true"`
	Deleted bool   `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Appointments []Appointment `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return
}
