package medicalRecordController

import (
	"log"
	"path/filepath"
	"time"

	"pramaansetu/config"
	"pramaansetu/database"
	"pramaansetu/middleware"
	"pramaansetu/models"
	"pramaansetu/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadMedicalRecord logs one medical file upload for the caller. Records
// carry no review status.
func UploadMedicalRecord(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "medical-records")
	storedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		log.Printf("Error saving medical record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed", nil)
	}

	record := models.MedicalRecord{
		UserID:     userID,
		FileUrl:    utils.GetFileURL(storedPath),
		FileName:   file.Filename,
		UploadedAt: time.Now(),
	}

	if err := database.Database.Db.Create(&record).Error; err != nil {
		log.Printf("Error saving medical record row: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed", nil)
	}

	utils.Notify.Publish(utils.Event{Type: "medicalRecord", Message: "New medical record uploaded"})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Medical record uploaded successfully", record)
}

func MyMedicalRecords(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	var records []models.MedicalRecord
	if err := database.Database.Db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		log.Printf("Error fetching medical records: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch records", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Records fetched successfully.", records)
}
