package models

import (
	"gorm.io/gorm"
)

// Certificate types
type DocType string

const (
	DocMedical DocType = "medical"
	DocPolice  DocType = "police"
	DocCaste   DocType = "caste"
)

// ParseDocType validates a wire value against the known certificate types.
func ParseDocType(s string) (DocType, bool) {
	switch DocType(s) {
	case DocMedical, DocPolice, DocCaste:
		return DocType(s), true
	}
	return "", false
}

// Certificate statuses
const (
	CertPending  = "pending"
	CertApproved = "approved"
	CertRejected = "rejected"
)

// Certificate is one reviewable sub-record of a Document.
type Certificate struct {
	URL    string `gorm:"default:''" json:"url"`
	Status string `gorm:"default:'pending'" json:"status"` // pending, approved, rejected
	Remark string `gorm:"default:''" json:"remark"`
}

// Document holds the three verification certificates of one user.
type Document struct {
	gorm.Model
	UserID  uint        `gorm:"uniqueIndex;not null" json:"userId"`
	Medical Certificate `gorm:"embedded;embeddedPrefix:medical_" json:"medical"`
	Police  Certificate `gorm:"embedded;embeddedPrefix:police_" json:"police"`
	Caste   Certificate `gorm:"embedded;embeddedPrefix:caste_" json:"caste"`
}

// Cert returns a pointer to the sub-record for the given type. The switch is
// exhaustive over DocType; an unknown value returns nil.
func (d *Document) Cert(t DocType) *Certificate {
	switch t {
	case DocMedical:
		return &d.Medical
	case DocPolice:
		return &d.Police
	case DocCaste:
		return &d.Caste
	}
	return nil
}

// AllApproved reports whether every certificate has been approved.
func (d *Document) AllApproved() bool {
	return d.Medical.Status == CertApproved &&
		d.Police.Status == CertApproved &&
		d.Caste.Status == CertApproved
}

// UploadedCount counts certificates with a file attached.
func (d *Document) UploadedCount() int {
	count := 0
	for _, c := range []Certificate{d.Medical, d.Police, d.Caste} {
		if c.URL != "" {
			count++
		}
	}
	return count
}
