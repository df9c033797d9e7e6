package adminController

import (
	"errors"
	"log"
	"path/filepath"
	"strings"

	"pramaansetu/database"
	"pramaansetu/middleware"
	"pramaansetu/models"
	"pramaansetu/services"
	"pramaansetu/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type userWithDocs struct {
	models.User
	HasDocuments   bool `json:"hasDocuments"`
	DocumentsCount int  `json:"documentsCount"`
}

// GetAllUsers lists candidate users, newest first, annotated with their
// document upload progress for the review dashboard.
func GetAllUsers(c *fiber.Ctx) error {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("role = ?", models.RoleUser).Order("created_at DESC").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users", nil)
	}

	result := make([]userWithDocs, 0, len(users))
	for _, user := range users {
		user.Password = ""
		entry := userWithDocs{User: user}

		var doc models.Document
		if err := db.Where("user_id = ?", user.ID).First(&doc).Error; err == nil {
			entry.HasDocuments = true
			entry.DocumentsCount = doc.UploadedCount()
		}

		result = append(result, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", result)
}

func GetOneUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User Not Found", nil)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully.", user)
}

// UploadCentersCsv bulk-creates centers from an uploaded CSV file. Invalid
// rows are skipped, not rejected wholesale.
func UploadCentersCsv(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File Required", nil)
	}

	if strings.ToLower(filepath.Ext(file.Filename)) != ".csv" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only csv files are allowed", nil)
	}

	src, err := file.Open()
	if err != nil {
		log.Printf("Error opening uploaded CSV: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process CSV", nil)
	}
	defer src.Close()

	centers, report, err := utils.ParseCenters(src)
	if err != nil {
		log.Printf("Error parsing CSV: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process CSV", nil)
	}

	if len(centers) > 0 {
		if err := database.Database.Db.Create(&centers).Error; err != nil {
			log.Printf("Error inserting centers: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process CSV", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully", report)
}

// ReviewDocument applies an approve/reject decision to one certificate and
// reports the recomputed application status.
func ReviewDocument(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id", nil)
	}

	reqData := new(struct {
		Type   string `json:"type"`
		Status string `json:"status"`
		Remark string `json:"remark"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	result, err := services.ReviewDocument(database.Database.Db, uint(userID), reqData.Type, reqData.Status, reqData.Remark)
	if err != nil {
		if services.IsKnown(err) {
			return middleware.JsonResponse(c, services.HTTPStatus(err), false, err.Error(), nil)
		}
		log.Printf("Error reviewing document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Document review failed", nil)
	}

	go notifyReviewDecision(uint(userID), result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, services.ReviewMessage(result), fiber.Map{
		"document":   result.Certificate,
		"userStatus": result.UserStatus,
	})
}

func notifyReviewDecision(userID uint, result *services.ReviewResult) {
	var user models.User
	if err := database.Database.Db.Select("name, email").First(&user, userID).Error; err != nil || user.Email == "" {
		return
	}
	utils.SendReviewDecisionEmail(user.Email, user.Name, string(result.DocType),
		result.Certificate.Status, result.Certificate.Remark)
}

// ApproveAndAssign allots both verification appointments for a user in one
// admin action: hospital a week out, police the day after.
func ApproveAndAssign(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id", nil)
	}

	appointments, err := services.ApproveAndAssign(database.Database.Db, uint(userID))
	if err != nil {
		if services.IsKnown(err) {
			// Report any appointment created before the failure.
			return middleware.JsonResponse(c, services.HTTPStatus(err), false, err.Error(), fiber.Map{
				"appointments": appointments,
			})
		}
		log.Printf("Error assigning appointments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "allotment failed", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointments alotted successfully", fiber.Map{
		"appointments": appointments,
	})
}
