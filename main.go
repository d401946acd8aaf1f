package main

import (
	"log"

	"pouchesitaly/config"
	"pouchesitaly/database"
	"pouchesitaly/handler"
	"pouchesitaly/helper"
	"pouchesitaly/logger"
	"pouchesitaly/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "*"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: config.ConfigOr("CORS_ORIGINS", "*") != "*",
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartStatsScheduler()
	defer helper.StopStatsScheduler()
	handler.StartSyncScheduler()
	defer handler.StopSyncScheduler()

	router.SetupRoutes(app)

	port := config.ConfigOr("APP_PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
