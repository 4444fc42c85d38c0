package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/salonhub/salonhub/app/controllers"
	"github.com/salonhub/salonhub/app/repository"
	"github.com/salonhub/salonhub/internal/pkg/cache"
	"github.com/salonhub/salonhub/internal/pkg/database"
	"github.com/salonhub/salonhub/internal/pkg/env"
	"github.com/salonhub/salonhub/internal/pkg/license"
	"github.com/salonhub/salonhub/internal/pkg/mail"
	"github.com/salonhub/salonhub/internal/pkg/middleware"
	"github.com/salonhub/salonhub/internal/pkg/router"
	"github.com/salonhub/salonhub/internal/pkg/scheduling"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatal(err)
	}
	err = app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, error) {
	env.SetupEnvFile()

	db, err := database.Setup()
	if err != nil {
		return nil, fmt.Errorf("database setup: %w", err)
	}
	redisClient := cache.New()
	availability := cache.NewAvailabilityCache(redisClient)

	repos := repository.NewRepositories(db)
	gate := license.NewGate(repos.License)
	allocator := scheduling.NewAllocator(repos.Appointment, repos.User)
	mailer := newMailer()

	app := fiber.New(fiber.Config{
		AppName: "salonhub",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	if basePath := findBasePath(); basePath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/docs/api/",
			FilePath: basePath + "public/docs/v1/openapi.yml",
			Path:     "v1",
		}))
	}

	// ROUTER
	router.InstallRouter(app, &router.ApiRouter{
		Gate:           middleware.NewTenancyGate(repos.User, gate),
		LimiterStorage: cache.NewLimiterStorage(),

		Auth:         controllers.NewAuthController(repos.User, repos.License),
		Salon:        controllers.NewSalonController(repos.Salon, mailer),
		License:      controllers.NewLicenseController(repos.License, repos.Salon, repos.Transaction),
		Availability: controllers.NewAvailabilityController(repos.Salon, allocator, availability),
		Booking:      controllers.NewBookingController(repos.Salon, repos.Service, repos.Appointment, mailer, availability),
		Appointment:  controllers.NewAppointmentController(repos.Appointment, repos.Service, repos.Client, allocator),
		Client:       controllers.NewClientController(repos.Client),
		Service:      controllers.NewServiceController(repos.Service),
		Product:      controllers.NewProductController(repos.Product),
		Transaction:  controllers.NewTransactionController(repos.Transaction, repos.License),
		Ticket:       controllers.NewTicketController(repos.Ticket),
		User:         controllers.NewUserController(repos.User),
	})

	return app, nil
}

func newMailer() mail.Mailer {
	if env.GetEnv("SMTP_HOST", "") == "" {
		log.Println("SMTP_HOST not set, outgoing mail disabled")
		return mail.NoopMailer{}
	}
	return mail.NewSMTPMailer()
}

func findBasePath() string {
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/salonhub to project root
		"../../../", // Fallback
	}
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public/docs"); !os.IsNotExist(err) {
			return path
		}
	}
	return ""
}
