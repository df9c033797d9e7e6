package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment statuses. AppointmentCancelled is declared for parity with the
// stored enum; no endpoint currently transitions into it.
const (
	AppointmentBooked    = "booked"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	gorm.Model
	UserID     uint      `gorm:"not null;index" json:"userId"`
	CenterID   uint      `gorm:"not null;index" json:"centerId"`
	CenterType string    `gorm:"not null" json:"centerType"` // hospital, police
	Date       time.Time `gorm:"not null;index" json:"date"` // normalized to start of day
	Status     string    `gorm:"default:'booked'" json:"status"`

	Center Center `gorm:"foreignKey:CenterID" json:"center,omitempty"`
}
