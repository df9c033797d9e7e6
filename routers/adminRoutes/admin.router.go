package adminRoutes

import (
	adminController "pramaansetu/controllers/adminControllers"
	"pramaansetu/middleware"
	"pramaansetu/models"
	adminValidator "pramaansetu/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin))

	adminGroup.Get("/users", adminController.GetAllUsers)
	adminGroup.Get("/user/:id", adminController.GetOneUser)
	adminGroup.Post("/upload", adminController.UploadCentersCsv)
	adminGroup.Post("/review/:userId", adminValidator.Review(), adminController.ReviewDocument)
	adminGroup.Post("/approve-assign/:userId", adminController.ApproveAndAssign)
}
