// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartcity-portal/config"
	"smartcity-portal/db"
	"smartcity-portal/handler"
	"smartcity-portal/logger"
	"smartcity-portal/mailer"
	"smartcity-portal/repository"
	"smartcity-portal/router"
	"smartcity-portal/service"

	"github.com/redis/go-redis/v9"
)

// App bundles the wired dependencies of the API.
type App struct {
	DB     *sql.DB
	Redis  *redis.Client
	Auth   *service.AuthService
	Router http.Handler
}

// New wires repositories, services and handlers on top of the given
// connections. redisClient may be nil, which disables the pending-list cache.
func New(database *sql.DB, redisClient *redis.Client, notifier service.Notifier, jwtSecret string, jwtTTL, cacheTTL time.Duration) *App {
	registrationRepo := repository.NewRegistrationRepository(database)
	adminRepo := repository.NewAdminRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	var cache service.ICacheClient
	if redisClient != nil {
		cache = redisClient
	}

	registrationService := service.NewRegistrationService(registrationRepo, cache, notifier, cacheTTL)
	authService := service.NewAuthService(registrationRepo, adminRepo, sessionRepo, jwtSecret, jwtTTL)

	r := router.NewRouter(
		handler.NewRegistrationHandler(registrationService),
		handler.NewAuthHandler(authService),
		handler.NewAdminHandler(registrationService),
		authService,
	)

	return &App{
		DB:     database,
		Redis:  redisClient,
		Auth:   authService,
		Router: r,
	}
}

// NewTestApp wires the API for integration tests with log-only email delivery.
func NewTestApp(database *sql.DB, redisClient *redis.Client) *App {
	return New(database, redisClient, service.LogNotifier{}, "integration-test-secret", time.Hour, time.Minute)
}

func newNotifier(ctx context.Context) service.Notifier {
	mail := config.AppConfig.Mail
	if mail.Provider != "ses" {
		return service.LogNotifier{}
	}
	notifier, err := mailer.NewSESNotifierFromEnv(ctx, mail.Region, mail.From)
	if err != nil {
		logger.Log.Fatalf("Error configuring SES: %v", err)
	}
	logger.Log.WithField("region", mail.Region).Info("Decision emails will be sent through SES")
	return notifier
}

func Run() {
	logger.Init()
	config.LoadConfig(".")
	logger.SetLevel(config.AppConfig.Log.Level)
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, config.AppConfig.Server.MigrationsDir); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	a := New(database, redisClient, newNotifier(context.Background()),
		config.AppConfig.JWT.SecretKey, config.AppConfig.JWT.TTL, config.AppConfig.Redis.TTL)

	admin := config.AppConfig.Admin
	if err := a.Auth.EnsureBootstrapAdmin(context.Background(), admin.Name, admin.Email, admin.Password); err != nil {
		logger.Log.Fatalf("Error creating bootstrap admin: %v", err)
	}

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
