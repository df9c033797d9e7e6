package services

import (
	"fmt"
	"testing"

	"pramaansetu/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Document{},
		&models.Center{},
		&models.Appointment{},
		&models.MedicalRecord{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, city string) models.User {
	t.Helper()

	user := models.User{
		Name:              name,
		Email:             name + "@example.com",
		Password:          "hashed",
		Role:              models.RoleUser,
		ApplicationStatus: models.StatusPending,
		City:              city,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedDocument(t *testing.T, db *gorm.DB, userID uint, medical, police, caste string) models.Document {
	t.Helper()

	doc := models.Document{
		UserID:  userID,
		Medical: models.Certificate{URL: "/uploads/medical.pdf", Status: medical},
		Police:  models.Certificate{URL: "/uploads/police.pdf", Status: police},
		Caste:   models.Certificate{URL: "/uploads/caste.pdf", Status: caste},
	}
	require.NoError(t, db.Create(&doc).Error)
	return doc
}

func seedCenter(t *testing.T, db *gorm.DB, name, centerType, city string, capacity int) models.Center {
	t.Helper()

	center := models.Center{
		Name:           name,
		Type:           centerType,
		City:           city,
		CapacityPerDay: capacity,
	}
	require.NoError(t, db.Create(&center).Error)
	return center
}
