package main

import (
	"log"
	"time"

	"keepnotes-be/internal/cache"
	"keepnotes-be/internal/config"
	"keepnotes-be/internal/controllers"
	"keepnotes-be/internal/database"
	"keepnotes-be/internal/jwt"
	"keepnotes-be/internal/middleware"
	"keepnotes-be/internal/repository"
	"keepnotes-be/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLMinutes)*time.Minute,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	noteService := service.NewNoteService(noteRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	noteController := controllers.NewNoteController(noteService)
	homeController := controllers.NewHomeController()

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
		}

		// Protected routes - require a valid bearer token
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService, userRepo))
		{
			protected.POST("/home", homeController.Home)
			protected.POST("/notes", noteController.CreateNote)
			protected.GET("/notes", noteController.GetNotes)
			protected.PUT("/notes/:noteID", noteController.UpdateNote)
			protected.DELETE("/notes/:noteID", noteController.DeleteNote)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
