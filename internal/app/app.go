// Package app wires repositories, services and handlers into a Fiber app.
package app

import (
	"errors"
	"time"

	"rentalstore/internal/config"
	"rentalstore/internal/database"
	"rentalstore/internal/handlers"
	"rentalstore/internal/logger"
	"rentalstore/internal/metrics"
	"rentalstore/internal/middleware"
	"rentalstore/internal/repositories"
	"rentalstore/internal/services"
	"rentalstore/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the external resources the app runs on. Log, Redis, Publisher
// and Registry are optional.
type Deps struct {
	DB         *gorm.DB
	Log        *zap.Logger
	JWT        config.JWTConfig
	LoginLimit config.RateLimitConfig
	Redis      *redis.Client
	Publisher  services.EventPublisher
	Registry   *prometheus.Registry
}

// App is the HTTP server together with the services behind it.
type App struct {
	Fiber   *fiber.App
	Auth    *services.AuthService
	Rentals *services.RentalService
}

// New builds the application.
func New(deps Deps) *App {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)
	validate := validation.New()

	// --- Repositories ---
	genreRepo := repositories.NewGORMGenreRepository(deps.DB)
	customerRepo := repositories.NewGORMCustomerRepository(deps.DB)
	movieRepo := repositories.NewGORMMovieRepository(deps.DB)
	rentalRepo := repositories.NewGORMRentalRepository(deps.DB)
	userRepo := repositories.NewGORMUserRepository(deps.DB)

	// --- Services ---
	genreService := services.NewGenreService(genreRepo, validate)
	customerService := services.NewCustomerService(customerRepo, validate)
	movieService := services.NewMovieService(movieRepo, genreRepo, validate)
	rentalService := services.NewRentalService(rentalRepo, deps.Publisher, m, log)
	authService := services.NewAuthService(userRepo, validate, deps.JWT.Secret, deps.JWT.TTL)

	// --- Fiber ---
	app := fiber.New(fiber.Config{
		AppName:      "rentalstore",
		ErrorHandler: errorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.Middleware(log))
	app.Use(m.Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(deps.DB); err != nil {
			log.Warn("health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// --- API Routes ---
	api := app.Group("/api", middleware.Authenticate(authService))
	handlers.NewAuthHandler(authService, validate, middleware.LoginRateLimit(deps.Redis, deps.LoginLimit, log)).RegisterRoutes(api)
	handlers.NewGenreHandler(genreService, validate).RegisterRoutes(api)
	handlers.NewCustomerHandler(customerService, validate).RegisterRoutes(api)
	handlers.NewMovieHandler(movieService, validate).RegisterRoutes(api)
	handlers.NewRentalHandler(rentalService, validate).RegisterRoutes(api)

	return &App{Fiber: app, Auth: authService, Rentals: rentalService}
}

// errorHandler answers Fiber errors with their own status and anything else
// with a generic 500, logging the detail.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		requestID, _ := c.Locals(logger.RequestIDKey).(string)
		log.Error("unhandled request error",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something failed.",
		})
	}
}
