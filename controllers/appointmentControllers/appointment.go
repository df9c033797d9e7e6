package appointmentController

import (
	"log"
	"time"

	"pramaansetu/database"
	"pramaansetu/middleware"
	"pramaansetu/models"
	"pramaansetu/services"
	"pramaansetu/utils"

	"github.com/gofiber/fiber/v2"
)

// parseDate accepts the formats the SPA sends.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func MyAppointments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	var appointments []models.Appointment
	if err := database.Database.Db.Where("user_id = ?", userID).
		Preload("Center").Find(&appointments).Error; err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch appointments", nil)
	}

	if len(appointments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No appointments found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointments fetched successfully.", appointments)
}

func AllAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := database.Database.Db.Preload("Center").Find(&appointments).Error; err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch appointments", nil)
	}

	if len(appointments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No appointments found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointments fetched successfully.", appointments)
}

// AllotAppointment is the admin path: first-fit center selection with the
// per-day capacity ceiling enforced.
func AllotAppointment(c *fiber.Ctx) error {
	reqData := new(struct {
		UserID uint   `json:"userId"`
		Type   string `json:"type"`
		Date   string `json:"date"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	date, ok := parseDate(reqData.Date)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date", nil)
	}

	appointment, err := services.AllotAppointment(database.Database.Db, reqData.UserID, reqData.Type, date)
	if err != nil {
		if services.IsKnown(err) {
			return middleware.JsonResponse(c, services.HTTPStatus(err), false, err.Error(), nil)
		}
		log.Printf("Error allotting appointment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "allotment failed", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment alotted successfully", fiber.Map{
		"appointment": appointment,
	})
}

// BookAppointment is the self-service path: random matching center, no
// capacity check. The notification is best-effort and never fails the booking.
func BookAppointment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	reqData := new(struct {
		Type string `json:"type"`
		Date string `json:"date"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Type == "" || reqData.Date == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Type and date are required", nil)
	}

	date, ok := parseDate(reqData.Date)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date", nil)
	}

	appointment, err := services.BookAppointment(database.Database.Db, userID, reqData.Type, date)
	if err != nil {
		if services.IsKnown(err) {
			return middleware.JsonResponse(c, services.HTTPStatus(err), false, err.Error(), nil)
		}
		log.Printf("Error booking appointment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Booking failed", nil)
	}

	utils.Notify.Publish(utils.Event{Type: "appointment", Message: "New appointment booked"})
	go notifyBooking(userID, appointment)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Appointment booked successfully", fiber.Map{
		"appointment": appointment,
	})
}

func notifyBooking(userID uint, appointment *models.Appointment) {
	var user models.User
	if err := database.Database.Db.Select("name, email").First(&user, userID).Error; err != nil || user.Email == "" {
		return
	}
	utils.SendAppointmentEmail(user.Email, user.Name, appointment.Center.Name,
		appointment.CenterType, appointment.Date.Format("02 Jan 2006"))
}

// CompleteAppointment marks an appointment completed; admin only, one-way.
func CompleteAppointment(c *fiber.Ctx) error {
	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Either appointmentId is invalid", nil)
	}

	appointment, err := services.CompleteAppointment(database.Database.Db, uint(appointmentID))
	if err != nil {
		if services.IsKnown(err) {
			return middleware.JsonResponse(c, services.HTTPStatus(err), false, err.Error(), nil)
		}
		log.Printf("Error completing appointment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete appointment", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment marked as completed", fiber.Map{
		"appointment": appointment,
	})
}
