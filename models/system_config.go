package models

import "time"

// SystemConfigID is the fixed id of the singleton configuration row.
const SystemConfigID = "system-config"

type SystemConfig struct {
	ID string `gorm:"primaryKey"`

	AppointmentDuration int `gorm:"not null;default:30"` // booking granularity, minutes
	AdvanceBookingDays  int `gorm:"not null;default:60"`
	CancellationHours   int `gorm:"not null;default:24"`
	WorkingDaysStart    int `gorm:"not null;default:1"` // Monday
	WorkingDaysEnd      int `gorm:"not null;default:6"` // Saturday

	BusinessName    string
	BusinessPhone   string
	BusinessEmail   string
	BusinessAddress string

	UpdatedAt time.Time
}
