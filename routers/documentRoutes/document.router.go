package documentRoutes

import (
	documentController "pramaansetu/controllers/documentControllers"
	"pramaansetu/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDocumentRoutes(app *fiber.App) {
	docGroup := app.Group("/api/documents", middleware.JWTMiddleware)

	docGroup.Post("/upload", documentController.UploadDocument)
	docGroup.Get("/my", documentController.MyDocuments)
}
