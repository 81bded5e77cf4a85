package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"storeadmin/internal/handlers"
	"storeadmin/internal/middleware"
	"storeadmin/internal/models"
	"storeadmin/internal/repositories"
	"storeadmin/internal/services"
	"storeadmin/pkg/cache"
	"storeadmin/pkg/imagehost"
	"storeadmin/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("SQLITE_PATH", "storeadmin.db")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("IMAGE_HOST_URL", "https://api.cloudinary.com/v1_1")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	// PostgreSQL when a DSN is configured, a local SQLite file otherwise.
	var (
		db  *gorm.DB
		err error
	)
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Profile{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// The admin event feed is best effort: services skip publication when no
	// client is available.
	var mqClient *rabbitmq.Client
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, admin events disabled: %v", err)
			mqClient = nil
		} else {
			defer mqClient.Close()
		}
	}

	// --- Redis cache (optional) ---
	var cacheClient *cache.Client
	if redisAddr := viper.GetString("REDIS_ADDR"); redisAddr != "" {
		cacheClient, err = cache.NewClient(redisAddr)
		if err != nil {
			log.Printf("Warning: Redis unavailable, dashboard caching disabled: %v", err)
			cacheClient = nil
		} else {
			defer cacheClient.Close()
		}
	}

	// --- Image host client ---
	uploader := imagehost.NewClient(imagehost.Config{
		BaseURL:      viper.GetString("IMAGE_HOST_URL"),
		CloudName:    viper.GetString("IMAGE_HOST_CLOUD"),
		UploadPreset: viper.GetString("IMAGE_HOST_UPLOAD_PRESET"),
	})

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	profileRepo := repositories.NewGORMProfileRepository(db)

	// --- Services ---
	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}
	authService := services.NewAuthService(profileRepo, viper.GetString("JWT_SECRET"))
	productService := services.NewProductService(productRepo, events)
	orderService := services.NewOrderService(orderRepo, profileRepo, events)
	userService := services.NewUserService(profileRepo, events)
	dashboardService := services.NewDashboardService(productRepo, profileRepo, cacheClient)

	// Seed the first admin account when configured and absent.
	seedAdmin(profileRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	uploadHandler := handlers.NewUploadHandler(uploader)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")

	// Sign-in is the only public route; everything else is admin-gated.
	authHandler.RegisterRoutes(apiV1)

	adminRoutes := apiV1.Group("", middleware.AuthRequired(authService), middleware.AdminRequired(authService))
	dashboardHandler.RegisterRoutes(adminRoutes)
	productHandler.RegisterRoutes(adminRoutes)
	orderHandler.RegisterRoutes(adminRoutes)
	userHandler.RegisterRoutes(adminRoutes)
	uploadHandler.RegisterRoutes(adminRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Admin event feed consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting admin events consumer...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Admin event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeAdminEvents(handler); consumerErr != nil {
				log.Printf("Failed to start admin events consumer: %v", consumerErr)
			}
		}()
	}

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

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedAdmin creates the initial admin profile from ADMIN_EMAIL and
// ADMIN_PASSWORD when no profile with that email exists yet.
func seedAdmin(repo repositories.ProfileRepository) {
	email := viper.GetString("ADMIN_EMAIL")
	password := viper.GetString("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	if _, err := repo.GetByEmail(email); err == nil {
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("Error checking for existing admin %s: %v", email, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.Profile{
		Email:    email,
		FullName: "Store Admin",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := repo.Create(&admin); err != nil {
		log.Printf("Error seeding admin %s: %v", email, err)
		return
	}
	log.Printf("Seeded admin account: %s", email)
}
