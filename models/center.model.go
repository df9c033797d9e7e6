package models

import (
	"gorm.io/gorm"
)

// Center types
const (
	CenterHospital = "hospital"
	CenterPolice   = "police"
)

// IsCenterType validates a wire value against the known center types.
func IsCenterType(s string) bool {
	return s == CenterHospital || s == CenterPolice
}

// DefaultCapacityPerDay applies when a CSV row carries no usable capacity.
const DefaultCapacityPerDay = 10

type Center struct {
	gorm.Model
	Name           string `gorm:"not null" json:"name"`
	Type           string `gorm:"not null" json:"type"` // hospital, police
	City           string `json:"city"`
	Address        string `json:"address"`
	Contact        string `json:"contact"`
	CapacityPerDay int    `gorm:"default:10" json:"capacityPerDay"`
}
