package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/karetou/karetou_backend/config"
	custommw "github.com/karetou/karetou_backend/middleware"
	"github.com/karetou/karetou_backend/routes"
	"github.com/karetou/karetou_backend/utils"
	"github.com/karetou/karetou_backend/websocket"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitFirebase()
	config.ConnectRedis()
	defer config.CloseRedis()

	client := config.ConnectDB()
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	if err := utils.InitializeStorage(); err != nil {
		log.Fatalf("Failed to initialize file storage: %v", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	go custommw.CleanupBlacklist()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(custommw.GlobalCORS())
	e.Use(custommw.SecurityHeadersWithConfig(custommw.SecurityConfig{
		AllowedDomains: []string{"https://admin.karetou.app"},
	}))

	rateLimiter := custommw.NewRateLimiter()
	e.Use(rateLimiter.RateLimit())

	e.Static("/uploads", "uploads")

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	routes.SetupRoutes(e, client, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting Karetou backend on port %s", port)
	if err := e.Start(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
