package main

import (
	"log"

	"github.com/leenx3/Stayease-hotel/config"
	"github.com/leenx3/Stayease-hotel/jobs"
	"github.com/leenx3/Stayease-hotel/routes"
	"github.com/leenx3/Stayease-hotel/services/logger"
)

// @title        Stayease Hotel API
// @version      1.0
// @description  API đặt phòng khách sạn
// @BasePath     /api/v1
func main() {
	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer m.Close()

	svc := routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m, routes.Options{
		Logger:  logger.NewDefaultLogger(config.LogLevel()),
		LockTTL: config.RoomLockTTL(),
	})

	if err := jobs.InitCronJobs(c, svc.Bookings); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	port := config.GetEnvDefault("PORT", "8083")
	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
