package main

import (
	"log"

	"pramaansetu/config"
	"pramaansetu/database"
	adminRoutes "pramaansetu/routers/adminRoutes"
	appointmentRoutes "pramaansetu/routers/appointmentRoutes"
	authRoutes "pramaansetu/routers/authRoutes"
	documentRoutes "pramaansetu/routers/documentRoutes"
	medicalRecordRoutes "pramaansetu/routers/medicalRecordRoutes"
	"pramaansetu/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.InitNotifier(config.AppConfig.NotifyWebhookURL)
	utils.StartAppointmentScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the SPA build and uploaded files
	app.Static("/", "./public")
	app.Static("/uploads", "./"+config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	documentRoutes.SetupDocumentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	appointmentRoutes.SetupAppointmentRoutes(app)
	medicalRecordRoutes.SetupMedicalRecordRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
