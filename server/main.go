package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Bovice22/axequacks-app-sub000/api/routes"
	"github.com/Bovice22/axequacks-app-sub000/internal/notifications"
	"github.com/Bovice22/axequacks-app-sub000/internal/reservations"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/config"
	"github.com/Bovice22/axequacks-app-sub000/internal/shared/database"
	"github.com/Bovice22/axequacks-app-sub000/pkg/logger"
	"github.com/Bovice22/axequacks-app-sub000/pkg/ratelimit"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	// Smart environment loading
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GIN_MODE") == "release" || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	// Load config
	cfg := config.Load()

	// Set Gin mode (debug/release)
	gin.SetMode(cfg.GinMode)

	// Initialize DB
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect:", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Rate Limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiterConfig := &ratelimit.Config{
			Enabled:              cfg.RateLimit.Enabled,
			WindowDuration:       cfg.RateLimit.WindowDuration,
			DefaultRequests:      cfg.RateLimit.DefaultRequests,
			AvailabilityRequests: cfg.RateLimit.AvailabilityRequests,
			AuthRequests:         cfg.RateLimit.AuthRequests,
			BookingRequests:      cfg.RateLimit.BookingRequests,
			AdminRequests:        cfg.RateLimit.AdminRequests,
			HealthRequests:       cfg.RateLimit.HealthRequests,
			WhitelistedIPs:       cfg.RateLimit.WhitelistedIPs,
		}

		rateLimiter = ratelimit.NewRateLimiter(db.GetRedisClient(), rateLimiterConfig)
		appLogger.Info("Rate limiter initialized",
			slog.Bool("enabled", cfg.RateLimit.Enabled),
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	// Booking event pipeline: producer feeds the booking topic, the consumer
	// group turns events into guest emails.
	producer, consumer := setupNotifications(cfg, appLogger)
	defer func() {
		if err := producer.Close(); err != nil {
			appLogger.Error("Error closing booking event producer", slog.Any("error", err))
		}
	}()

	notificationCtx, notificationCancel := context.WithCancel(context.Background())
	defer notificationCancel()

	if consumer != nil {
		go func() {
			if err := consumer.Start(notificationCtx, 3); err != nil {
				appLogger.Error("Failed to start notification consumer", slog.Any("error", err))
			}
		}()
		defer func() {
			appLogger.Info("Stopping notification consumer...")
			if err := consumer.Stop(); err != nil {
				appLogger.Error("Error stopping notification consumer", slog.Any("error", err))
			}
		}()
	}

	// Setup router with rate limiter
	router := setupRouter(cfg, db, rateLimiter, producer)

	// HTTP server
	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("api_status", fmt.Sprintf("http://localhost:%s%s/status", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", cfg.APIVersion),
			slog.Bool("kafka_events", cfg.Kafka.Enabled),
			slog.Bool("rate_limiting", cfg.RateLimit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

// setupNotifications wires the Kafka booking pipeline, or a no-op producer
// when Kafka is disabled. A consumer failure downgrades to producer-only so
// the booking flow itself keeps working.
func setupNotifications(cfg *config.Config, appLogger *logger.Logger) (notifications.Producer, notifications.Consumer) {
	if !cfg.Kafka.Enabled {
		appLogger.Info("Kafka disabled: booking events will be dropped")
		return notifications.NoopProducer{}, nil
	}

	producerConfig := notifications.DefaultProducerConfig()
	producerConfig.Brokers = cfg.Kafka.Brokers
	producerConfig.BookingTopic = cfg.Kafka.BookingTopic

	producer, err := notifications.NewKafkaProducer(producerConfig)
	if err != nil {
		appLogger.Error("Failed to initialize booking event producer", slog.Any("error", err))
		appLogger.Info("Continuing without booking events")
		return notifications.NoopProducer{}, nil
	}

	var emailService notifications.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = notifications.NewSMTPEmailService(cfg.Email)
	} else {
		appLogger.Info("SMTP not configured: guest emails will be logged only")
		emailService = notifications.LogEmailService{}
	}

	consumerConfig := notifications.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup
	consumerConfig.Topics = []string{cfg.Kafka.BookingTopic}

	consumer, err := notifications.NewKafkaConsumer(consumerConfig, emailService)
	if err != nil {
		appLogger.Error("Failed to initialize notification consumer", slog.Any("error", err))
		return producer, nil
	}

	return producer, consumer
}

func setupRouter(cfg *config.Config, db *database.DB, rateLimiter *ratelimit.RateLimiter, publisher reservations.EventPublisher) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	// Built-in middleware: logs requests + recovers from panics
	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	// CORS configuration
	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true // allow every origin dynamically
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-RateLimit-*"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Global rate limiting middleware (applied to all routes)
	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
		appLogger.Info("Rate limiting middleware applied to all routes")
	}

	// Initialize and setup routes
	appRouter := routes.NewRouter(cfg, db, publisher)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
