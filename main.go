package main

import (
	"log"

	"skillforge/config"
	"skillforge/database"
	adminRoutes "skillforge/routers/adminRoutes"
	attendanceRoutes "skillforge/routers/attendanceRoutes"
	authRoutes "skillforge/routers/authRoutes"
	certificateRoutes "skillforge/routers/certificateRoutes"
	courseRoutes "skillforge/routers/courseRoutes"
	userRoutes "skillforge/routers/userRoutes"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

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

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupTeacherCourseRoutes(app)
	attendanceRoutes.SetupAttendanceRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeProgressReconciler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
