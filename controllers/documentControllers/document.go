package documentController

import (
	"errors"
	"log"
	"path/filepath"

	"pramaansetu/config"
	"pramaansetu/database"
	"pramaansetu/middleware"
	"pramaansetu/models"
	"pramaansetu/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadDocument stores one certificate file for the caller. Re-uploading a
// certificate resets its status to pending and clears the reviewer remark;
// the aggregate application status is only ever touched by the review engine.
func UploadDocument(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	docType, ok := models.ParseDocType(c.FormValue("type"))
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Document type", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	destDir := filepath.Join(config.AppConfig.UploadDir, "documents")
	storedPath, err := utils.SaveUploadedFile(file, destDir)
	if err != nil {
		log.Printf("Error saving uploaded document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed", nil)
	}

	db := database.Database.Db

	var doc models.Document
	err = db.Where("user_id = ?", userID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doc = models.Document{UserID: userID}
	} else if err != nil {
		log.Printf("Error fetching document record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed", nil)
	}

	cert := doc.Cert(docType)
	cert.URL = utils.GetFileURL(storedPath)
	cert.Status = models.CertPending
	cert.Remark = ""

	if err := db.Save(&doc).Error; err != nil {
		log.Printf("Error saving document record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Upload failed", nil)
	}

	utils.Notify.Publish(utils.Event{Type: "document", Message: "New document uploaded"})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Document uploaded successfully", doc)
}

// MyDocuments returns the caller's document record.
func MyDocuments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	var doc models.Document
	if err := database.Database.Db.Where("user_id = ?", userID).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No documents uploaded yet", nil)
		}
		log.Printf("Error fetching documents: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Documents fetched successfully.", doc)
}
