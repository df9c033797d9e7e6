package services

import (
	"errors"
	"fmt"

	"pramaansetu/models"

	"gorm.io/gorm"
)

// ReviewResult is what a single review decision produced.
type ReviewResult struct {
	DocType     models.DocType     `json:"type"`
	Certificate models.Certificate `json:"certificate"`
	UserStatus  string             `json:"userStatus"`
}

// ReviewDocument applies an approve/reject decision to one certificate of the
// user's document record and recomputes the aggregate application status.
// The certificate write and the user-status write commit in one transaction.
//
// Aggregation: all three approved -> approved; this decision rejected ->
// rejected; otherwise pending, except that an already rejected application
// stays rejected after a lone partial approval.
func ReviewDocument(db *gorm.DB, userID uint, docType, decision, remark string) (*ReviewResult, error) {
	dt, ok := models.ParseDocType(docType)
	if !ok {
		return nil, invalidArgument("Invalid Document type")
	}
	if decision != models.CertApproved && decision != models.CertRejected {
		return nil, invalidArgument("Invalid status")
	}

	var result *ReviewResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("User not found")
			}
			return err
		}

		var doc models.Document
		if err := tx.Where("user_id = ?", userID).First(&doc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Document not found")
			}
			return err
		}

		cert := doc.Cert(dt)
		if cert.URL == "" {
			// Nothing has been uploaded for this certificate yet.
			return notFound("Document not found")
		}

		cert.Status = decision
		if decision == models.CertApproved {
			cert.Remark = ""
		} else {
			cert.Remark = remark
		}

		switch {
		case doc.AllApproved():
			user.ApplicationStatus = models.StatusApproved
		case decision == models.CertRejected:
			user.ApplicationStatus = models.StatusRejected
		default:
			// A partial approval never clears an earlier rejection.
			if user.ApplicationStatus != models.StatusRejected {
				user.ApplicationStatus = models.StatusPending
			}
		}

		if err := tx.Save(&doc).Error; err != nil {
			return err
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		result = &ReviewResult{
			DocType:     dt,
			Certificate: *cert,
			UserStatus:  user.ApplicationStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReviewMessage builds the human message for a finished review, matching the
// admin dashboard's expectations.
func ReviewMessage(r *ReviewResult) string {
	return fmt.Sprintf("%s document %s", r.DocType, r.Certificate.Status)
}
