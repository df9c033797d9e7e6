package services

import (
	"errors"
	"math/rand"
	"time"

	"pramaansetu/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// BookAppointment is the self-service path: the user picks a type and date and
// gets a random matching center in their city. Unlike admin allotment there is
// no capacity check and no duplicate check.
func BookAppointment(db *gorm.DB, userID uint, centerType string, date time.Time) (*models.Appointment, error) {
	if centerType == "" || date.IsZero() {
		return nil, invalidArgument("Type and date are required")
	}
	if !models.IsCenterType(centerType) {
		return nil, invalidArgument("Invalid type")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}

	var centers []models.Center
	if err := db.Where("type = ? AND city = ?", centerType, user.City).Find(&centers).Error; err != nil {
		return nil, err
	}
	if len(centers) == 0 {
		return nil, notFound("No centers available in your city")
	}

	center := centers[rand.Intn(len(centers))]

	appointment := models.Appointment{
		UserID:     user.ID,
		CenterID:   center.ID,
		CenterType: centerType,
		Date:       now.New(date).BeginningOfDay(),
		Status:     models.AppointmentBooked,
	}
	if err := db.Create(&appointment).Error; err != nil {
		return nil, err
	}

	appointment.Center = center
	return &appointment, nil
}
