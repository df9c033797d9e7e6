package utils

import (
	"log"
	"time"

	"pramaansetu/database"
	"pramaansetu/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[APPOINTMENT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendAppointmentReminders emails every user with a booked appointment
// tomorrow. Reminder failures only get logged; the job never retries.
func sendAppointmentReminders() {
	db := database.Database.Db
	tomorrow := now.New(time.Now().AddDate(0, 0, 1)).BeginningOfDay()

	var appointments []models.Appointment
	if err := db.Where("date = ? AND status = ?", tomorrow, models.AppointmentBooked).
		Preload("Center").
		Find(&appointments).Error; err != nil {
		logScheduler("Error fetching tomorrow's appointments: " + err.Error())
		return
	}

	for _, appointment := range appointments {
		var user models.User
		if err := db.Select("name, email").First(&user, appointment.UserID).Error; err != nil {
			continue
		}
		if user.Email == "" {
			continue
		}
		SendAppointmentReminderEmail(user.Email, user.Name, appointment.Center.Name,
			appointment.Date.Format("02 Jan 2006"))
	}

	logScheduler("Reminders dispatched for " + tomorrow.Format("2006-01-02"))
}

// StartAppointmentScheduler runs the daily reminder job at 08:00.
func StartAppointmentScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 8 * * *", sendAppointmentReminders); err != nil {
		log.Fatalf("Failed to register reminder job: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
