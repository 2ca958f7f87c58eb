package main

import (
	"fmt"
	"log"
	"net/http"

	"tagalong/internal/config"
	"tagalong/internal/events"
	"tagalong/internal/handlers"
	"tagalong/internal/middleware"
	"tagalong/internal/services"
	"tagalong/internal/store"
	"tagalong/pkg/logger"
	"tagalong/pkg/websocket"
	"tagalong/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Stores boot from the demo fixture; there is no durable storage.
	seed := store.DefaultSeed()
	users := store.NewUserStore(seed.Users)
	rides := store.NewRideStore(seed.Rides)
	chats := store.NewConversationStore(seed.Chats)
	notifications := store.NewNotificationStore(seed.Notifications)

	bus := events.NewBus()

	// The websocket hub doubles as the toast display collaborator.
	wsHandler := websocket.NewHandler()

	authService := services.NewAuthService(users, cfg.Security, appLogger)
	chatService := services.NewChatService(chats, users, bus, cfg.Chat, appLogger)
	notificationService := services.NewNotificationService(notifications, bus, wsHandler.GetHub(), appLogger)
	rideService := services.NewRideService(rides, users, bus, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	chatHandler := handlers.NewChatHandler(chatService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	rideHandler := handlers.NewRideHandler(rideService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(appLogger))

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, cfg.Security.JWTSecret)
		routes.SetupChatRoutes(v1, chatHandler, cfg.Security.JWTSecret)
		routes.SetupNotificationRoutes(v1, notificationHandler, cfg.Security.JWTSecret)
		routes.SetupRideRoutes(v1, rideHandler, cfg.Security.JWTSecret)

		ws := v1.Group("/ws")
		ws.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
		ws.GET("", wsHandler.HandleWebSocket)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("port", cfg.App.Port).Info("Starting server")
	log.Fatal(http.ListenAndServe(addr, router))
}
