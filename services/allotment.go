package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pramaansetu/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// centerDayLocks serializes the count-then-insert for one (centerID, date)
// pair, so concurrent allotments cannot both observe free capacity and
// overshoot it.
var centerDayLocks = struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}{locks: make(map[string]*sync.Mutex)}

func lockCenterDay(centerID uint, day time.Time) *sync.Mutex {
	key := fmt.Sprintf("%d|%s", centerID, day.Format("2006-01-02"))

	centerDayLocks.mu.Lock()
	l, ok := centerDayLocks.locks[key]
	if !ok {
		l = &sync.Mutex{}
		centerDayLocks.locks[key] = l
	}
	centerDayLocks.mu.Unlock()

	l.Lock()
	return l
}

// AllotAppointment assigns the user to the first center of the given type in
// the user's city that still has same-day capacity, and records the booking.
// Candidates are scanned in id order so the first fit is deterministic.
func AllotAppointment(db *gorm.DB, userID uint, centerType string, date time.Time) (*models.Appointment, error) {
	if !models.IsCenterType(centerType) {
		return nil, invalidArgument("Invalid centre type")
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User not found")
		}
		return nil, err
	}

	var existing models.Appointment
	err := db.Where("user_id = ? AND center_type = ? AND status = ?",
		user.ID, centerType, models.AppointmentBooked).First(&existing).Error
	if err == nil {
		return nil, conflict("User already has appointment")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var centers []models.Center
	if err := db.Where("type = ? AND city = ?", centerType, user.City).
		Order("id ASC").Find(&centers).Error; err != nil {
		return nil, err
	}
	if len(centers) == 0 {
		return nil, notFound("No center in this city available")
	}

	day := now.New(date).BeginningOfDay()

	for _, center := range centers {
		appointment, err := tryBookCenter(db, user.ID, center, centerType, day)
		if err != nil {
			return nil, err
		}
		if appointment != nil {
			return appointment, nil
		}
	}

	return nil, noCapacity("No capacity available")
}

// tryBookCenter books the center for the day if its booked count is still
// below capacity. Returns nil without error when the center is full.
func tryBookCenter(db *gorm.DB, userID uint, center models.Center, centerType string, day time.Time) (*models.Appointment, error) {
	l := lockCenterDay(center.ID, day)
	defer l.Unlock()

	var booked int64
	err := db.Model(&models.Appointment{}).
		Where("center_id = ? AND date = ? AND status = ?", center.ID, day, models.AppointmentBooked).
		Count(&booked).Error
	if err != nil {
		return nil, err
	}

	if booked >= int64(center.CapacityPerDay) {
		return nil, nil
	}

	appointment := models.Appointment{
		UserID:     userID,
		CenterID:   center.ID,
		CenterType: centerType,
		Date:       day,
		Status:     models.AppointmentBooked,
	}
	if err := db.Create(&appointment).Error; err != nil {
		return nil, err
	}

	appointment.Center = center
	return &appointment, nil
}

// ApproveAndAssign is the admin shortcut that allots both verification
// appointments for a user: hospital a week out, police the day after.
func ApproveAndAssign(db *gorm.DB, userID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment

	hospital, err := AllotAppointment(db, userID, models.CenterHospital, time.Now().AddDate(0, 0, 7))
	if err != nil {
		return appointments, err
	}
	appointments = append(appointments, *hospital)

	police, err := AllotAppointment(db, userID, models.CenterPolice, time.Now().AddDate(0, 0, 8))
	if err != nil {
		return appointments, err
	}
	appointments = append(appointments, *police)

	return appointments, nil
}

// CompleteAppointment marks a booked appointment as completed. The transition
// is one-way; completing twice is a conflict.
func CompleteAppointment(db *gorm.DB, appointmentID uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := db.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Appointment not found")
		}
		return nil, err
	}

	if appointment.Status == models.AppointmentCompleted {
		return nil, conflict("Already Completed")
	}

	appointment.Status = models.AppointmentCompleted
	if err := db.Save(&appointment).Error; err != nil {
		return nil, err
	}

	return &appointment, nil
}
