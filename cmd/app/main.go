package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "memberdesk/docs"
	"memberdesk/internal/attendance"
	"memberdesk/internal/config"
	"memberdesk/internal/db"
	"memberdesk/internal/email"
	"memberdesk/internal/events"
	"memberdesk/internal/jobs"
	"memberdesk/internal/logger"
	"memberdesk/internal/payment"
	"memberdesk/internal/plan"
	"memberdesk/internal/server"
	"memberdesk/internal/subscription"
	"memberdesk/internal/systemuser"
	"memberdesk/internal/tenant"
	"memberdesk/internal/upload"
	"memberdesk/internal/user"
	"memberdesk/internal/userdetail"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

// @title MemberDesk API
// @version 1.0
// @description Multi-tenant membership backend: members, plans, payments and attendance.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info("Starting MemberDesk", "port", cfg.Port, "timezone", cfg.Location().String(), "auth_enabled", cfg.AuthEnabled)

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notifier payment.Notifier = email.Disabled{}
	if cfg.EmailEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		emailService := email.New(email.Config{
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
			SMTPHost: cfg.SMTPHost,
			SMTPPort: cfg.SMTPPort,
			SMTPUser: cfg.SMTPUser,
			SMTPPass: cfg.SMTPPass,
		}, rdb)
		defer emailService.Close()
		go emailService.Start(ctx)
		notifier = emailService
		logger.Info("Email service initialized", "redis", cfg.RedisAddr)
	}

	publisher := events.Connect(cfg.AMQPURL, cfg.EventsExchange)
	defer publisher.Close()

	storage := upload.NewStorage(afero.NewOsFs(), cfg.UploadsDir, cfg.UploadsURL, cfg.UploadMaxBytes)
	loc := cfg.Location()

	plans := plan.NewService(plan.NewRepository(database))
	subscriptionRepo := subscription.NewRepository(database)

	svc := server.Services{
		Tenants:       tenant.NewService(tenant.NewRepository(database), cfg.JWTSecret),
		Users:         user.NewService(user.NewRepository(database), storage, loc),
		Plans:         plans,
		Subscriptions: subscription.NewService(subscriptionRepo, plans, loc),
		Payments:      payment.NewService(payment.NewRepository(database), storage, publisher, notifier, loc),
		Attendance:    attendance.NewService(attendance.NewRepository(database), publisher, loc),
		SystemUsers:   systemuser.NewService(systemuser.NewRepository(database)),
		UserDetails:   userdetail.NewService(userdetail.NewRepository(database), loc),
	}

	scheduler := jobs.NewScheduler(jobs.New(storage, subscriptionRepo, loc))
	if err := scheduler.Start(); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}

	srv := server.New(cfg, database, svc)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	<-scheduler.Stop().Done()
	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
