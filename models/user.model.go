package models

import (
	"gorm.io/gorm"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Application statuses. StatusInReview is accepted on the wire for
// compatibility with older records but nothing writes it anymore:
// a partially reviewed application reports StatusPending.
const (
	StatusPending  = "pending"
	StatusInReview = "in-review"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type User struct {
	gorm.Model
	Name              string `gorm:"not null" json:"name"`
	Email             string `gorm:"unique;not null" json:"email"`
	Password          string `gorm:"not null" json:"password,omitempty"`
	Role              string `gorm:"default:'user'" json:"role"` // user, admin
	ApplicationStatus string `gorm:"default:'pending'" json:"applicationStatus"`
	City              string `json:"city"`
	Address           string `json:"address"`
	IsDeleted         bool   `gorm:"default:false" json:"-"`
}
