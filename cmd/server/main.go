package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"events-marketplace/internal/config"
	"events-marketplace/internal/database"
	"events-marketplace/internal/handlers"
	"events-marketplace/internal/middleware"
	"events-marketplace/internal/repositories"
	"events-marketplace/internal/services"

	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}
	log.Info("database ready")

	// Session cookie store
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30, // 30 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Optional redis-backed listing cache
	var eventCache services.EventCache
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.WithError(err).Fatal("invalid REDIS_URL")
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			log.WithError(err).Warn("redis unreachable, continuing without listing cache")
		} else {
			eventCache = services.NewRedisEventCache(client, log)
			log.Info("redis listing cache enabled")
		}
		cancel()
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	zoneRepo := repositories.NewZoneRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)
	reportRepo := repositories.NewReportRepository(db.DB)

	// Services
	authService := services.NewAuthService(userRepo)
	paymentService := services.NewPaymentService(services.PaymentConfig{
		CheckoutBaseURL: cfg.Payment.CheckoutBaseURL,
		MerchantCode:    cfg.Payment.MerchantCode,
	})
	purchaseService := services.NewPurchaseService(userRepo, eventRepo, zoneRepo, orderRepo, paymentService)
	eventService := services.NewEventService(eventRepo, zoneRepo, eventCache)
	moderationService := services.NewModerationService(eventRepo, auditRepo, eventCache, log)
	reportService := services.NewReportService(reportRepo, auditRepo)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authService, sessionStore)
	authHandler := handlers.NewAuthHandler(authService, authMiddleware)
	eventHandler := handlers.NewEventHandler(eventService)
	orderHandler := handlers.NewOrderHandler(purchaseService)
	adminHandler := handlers.NewAdminHandler(moderationService, reportService)

	router := handlers.NewRouter(log, authMiddleware, authHandler, eventHandler, orderHandler, adminHandler)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.WithField("addr", addr).Info("server listening")
	if err := server.ListenAndServe(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
