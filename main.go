package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staynest/config"
	_ "staynest/docs"
	"staynest/jobs"
	"staynest/models"
	"staynest/routes"
	"staynest/utils"
)

// @title StayNest API
// @version 1.0
// @description 호텔 객실 예약 및 고객 지원 챗봇 API
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	if err := utils.InitFileLoggers(); err != nil {
		log.Printf("Warning: không ghi được log ra file: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.RoomImage{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.FAQEntry{},
		&models.ChatbotSettings{},
	); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

	if err := jobs.RegisterJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	c.Start()
	defer c.Stop()

	routes.SetupRoutes(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
