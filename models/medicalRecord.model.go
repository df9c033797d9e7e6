package models

import (
	"time"

	"gorm.io/gorm"
)

// MedicalRecord is an independent upload log kept per user; entries carry no
// review status.
type MedicalRecord struct {
	gorm.Model
	UserID     uint      `gorm:"not null;index" json:"userId"`
	FileUrl    string    `gorm:"not null" json:"fileUrl"`
	FileName   string    `gorm:"not null" json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}
