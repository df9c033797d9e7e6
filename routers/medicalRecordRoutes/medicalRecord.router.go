package medicalRecordRoutes

import (
	medicalRecordController "pramaansetu/controllers/medicalRecordControllers"
	"pramaansetu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMedicalRecordRoutes(app *fiber.App) {
	recordGroup := app.Group("/api/medical-records", middleware.JWTMiddleware)

	recordGroup.Post("/upload", medicalRecordController.UploadMedicalRecord)
	recordGroup.Get("/my", medicalRecordController.MyMedicalRecords)
}
