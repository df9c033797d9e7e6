package appointmentRoutes

import (
	appointmentController "pramaansetu/controllers/appointmentControllers"
	"pramaansetu/middleware"
	"pramaansetu/models"
	appointmentValidator "pramaansetu/validators/appointment"

	"github.com/gofiber/fiber/v2"
)

func SetupAppointmentRoutes(app *fiber.App) {
	appointmentGroup := app.Group("/api/appointment", middleware.JWTMiddleware)

	appointmentGroup.Get("/my", appointmentController.MyAppointments)
	appointmentGroup.Get("/all", middleware.RequireRole(models.RoleAdmin), appointmentController.AllAppointments)
	appointmentGroup.Post("/allot", middleware.RequireRole(models.RoleAdmin), appointmentValidator.Allot(), appointmentController.AllotAppointment)
	appointmentGroup.Post("/book", appointmentValidator.Book(), appointmentController.BookAppointment)
	appointmentGroup.Post("/completed/:id", middleware.RequireRole(models.RoleAdmin), appointmentController.CompleteAppointment)
}
