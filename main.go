package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/models"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE", "memory")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("ADMIN_ID", "admin")
	viper.SetDefault("ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("ADMIN_PASSWORD", "changeme")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	uploadDir := viper.GetString("UPLOAD_DIR")

	// --- Storage ---
	// One store is constructed here and passed by handle to everything that
	// needs it; nothing reaches for it through package state.
	store, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", uploadDir, err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	var contactPublisher services.ContactPublisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		contactPublisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; contact events disabled")
	}

	// --- Admin account ---
	adminID := viper.GetString("ADMIN_ID")
	adminEmail := viper.GetString("ADMIN_EMAIL")
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(viper.GetString("ADMIN_PASSWORD")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	if _, err := store.UpsertUser(&models.User{ID: adminID, Email: &adminEmail}); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// --- Services ---
	projectService := services.NewProjectService(store)
	mediaService := services.NewMediaService(store, uploadDir, "/uploads")
	contactService := services.NewContactService(store, contactPublisher)
	userService := services.NewUserService(store)
	authService := services.NewAuthService(store, viper.GetString("JWT_SECRET"), adminID, adminEmail, passwordHash)

	// --- Handlers ---
	projectHandler := handlers.NewProjectHandler(projectService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	contactHandler := handlers.NewContactHandler(contactService)
	authHandler := handlers.NewAuthHandler(authService, userService)

	// --- Fiber App ---
	app := fiber.New(fiber.Config{
		BodyLimit: handlers.MaxUploadBytes + 1<<20, // multipart overhead headroom
	})

	app.Use(logger.New()) // Request logger

	// Uploaded files are served straight from disk.
	app.Static("/uploads", uploadDir)

	// --- API Routes ---
	api := app.Group("/api")

	// Public surface: published projects, contact form, login.
	projectHandler.RegisterPublicRoutes(api)
	contactHandler.RegisterPublicRoutes(api)
	authHandler.RegisterPublicRoutes(api)

	// Admin surface behind JWT authentication.
	admin := api.Group("/admin", middleware.AuthRequired(authService))
	projectHandler.RegisterAdminRoutes(admin)
	mediaHandler.RegisterAdminRoutes(admin)
	contactHandler.RegisterAdminRoutes(admin)
	authHandler.RegisterAdminRoutes(admin)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Contact event consumer ---
	// A lightweight notification hook: received submissions are logged. A
	// mailer would hang off this same consumer.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for contact events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received contact event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeContactEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Session sweeper ---
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				authService.SweepExpiredSessions()
			case <-sweepDone:
				return
			}
		}
	}()

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	close(sweepDone)

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newStore selects the storage implementation from configuration: the
// transient in-process store for local development, Postgres for real
// deployments.
func newStore() (storage.Store, error) {
	switch backend := viper.GetString("STORAGE"); backend {
	case "memory":
		log.Println("Using in-memory storage (state is lost on restart)")
		return storage.NewMemoryStore(), nil
	case "postgres":
		dsn := viper.GetString("DATABASE_URL")
		// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
		// which the store maps to ConflictError.
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, &storage.TransportError{Err: err}
		}
		if err := storage.Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Using Postgres storage")
		return storage.NewGormStore(db), nil
	default:
		return nil, &storage.ValidationError{Msg: "unknown STORAGE backend: " + backend}
	}
}
