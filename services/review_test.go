package services

import (
	"testing"

	"pramaansetu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// checkStatusInvariant asserts that the user is approved exactly when all
// three certificates are approved.
func checkStatusInvariant(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, userID).Error)
	var doc models.Document
	require.NoError(t, db.Where("user_id = ?", userID).First(&doc).Error)

	if doc.AllApproved() {
		assert.Equal(t, models.StatusApproved, user.ApplicationStatus)
	} else {
		assert.NotEqual(t, models.StatusApproved, user.ApplicationStatus)
	}
}

func TestReviewFinalApprovalApprovesApplication(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "asha", "Delhi")
	seedDocument(t, db, user.ID, models.CertPending, models.CertApproved, models.CertApproved)

	result, err := ReviewDocument(db, user.ID, "medical", models.CertApproved, "")
	require.NoError(t, err)

	assert.Equal(t, models.CertApproved, result.Certificate.Status)
	assert.Equal(t, models.StatusApproved, result.UserStatus)

	var doc models.Document
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&doc).Error)
	assert.True(t, doc.AllApproved())

	checkStatusInvariant(t, db, user.ID)
}

func TestReviewRejectStoresRemark(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "asha", "Delhi")
	seedDocument(t, db, user.ID, models.CertPending, models.CertApproved, models.CertApproved)

	result, err := ReviewDocument(db, user.ID, "medical", models.CertRejected, "blurry scan")
	require.NoError(t, err)

	assert.Equal(t, models.CertRejected, result.Certificate.Status)
	assert.Equal(t, "blurry scan", result.Certificate.Remark)
	assert.Equal(t, models.StatusRejected, result.UserStatus)

	checkStatusInvariant(t, db, user.ID)
}

func TestReviewApproveClearsRemark(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "ravi", "Pune")
	doc := seedDocument(t, db, user.ID, models.CertRejected, models.CertPending, models.CertPending)
	doc.Medical.Remark = "blurry scan"
	require.NoError(t, db.Save(&doc).Error)

	result, err := ReviewDocument(db, user.ID, "medical", models.CertApproved, "ignored")
	require.NoError(t, err)

	assert.Equal(t, models.CertApproved, result.Certificate.Status)
	assert.Empty(t, result.Certificate.Remark)
}

func TestReviewRejectionIsSticky(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "meena", "Delhi")
	seedDocument(t, db, user.ID, models.CertPending, models.CertPending, models.CertPending)

	_, err := ReviewDocument(db, user.ID, "police", models.CertRejected, "seal missing")
	require.NoError(t, err)

	// A later approval of a different certificate must not move the
	// application away from rejected while one remains non-approved.
	result, err := ReviewDocument(db, user.ID, "caste", models.CertApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, result.UserStatus)

	checkStatusInvariant(t, db, user.ID)
}

func TestReviewPartialApprovalStaysPending(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "kiran", "Delhi")
	seedDocument(t, db, user.ID, models.CertPending, models.CertPending, models.CertPending)

	result, err := ReviewDocument(db, user.ID, "medical", models.CertApproved, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, result.UserStatus)

	checkStatusInvariant(t, db, user.ID)
}

func TestReviewInvalidArguments(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "asha", "Delhi")
	seedDocument(t, db, user.ID, models.CertPending, models.CertPending, models.CertPending)

	_, err := ReviewDocument(db, user.ID, "passport", models.CertApproved, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ReviewDocument(db, user.ID, "medical", "maybe", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Nothing was mutated
	var user2 models.User
	require.NoError(t, db.First(&user2, user.ID).Error)
	assert.Equal(t, models.StatusPending, user2.ApplicationStatus)
}

func TestReviewMissingRecords(t *testing.T) {
	db := openTestDB(t)

	_, err := ReviewDocument(db, 999, "medical", models.CertApproved, "")
	assert.ErrorIs(t, err, ErrNotFound)

	// User exists but never uploaded anything
	user := seedUser(t, db, "noopdocs", "Delhi")
	_, err = ReviewDocument(db, user.ID, "medical", models.CertApproved, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewMissingCertificate(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "partial", "Delhi")

	// Only the medical certificate has been uploaded
	doc := models.Document{
		UserID:  user.ID,
		Medical: models.Certificate{URL: "/uploads/medical.pdf", Status: models.CertPending},
	}
	require.NoError(t, db.Create(&doc).Error)

	_, err := ReviewDocument(db, user.ID, "police", models.CertApproved, "")
	assert.ErrorIs(t, err, ErrNotFound)
}
