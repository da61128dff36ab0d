package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/jmcastillo/zodiac-prophecy-backend/internal/config"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/handlers"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/middleware"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/routes"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/services"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/store"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/validation"
	"github.com/jmcastillo/zodiac-prophecy-backend/internal/zodiac"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Everything lives in memory for the lifetime of the process. That is
	// the product: the fortune teller forgets everyone on restart.
	memory := store.NewMemory()
	engine := zodiac.NewEngine()
	validator := validation.NewUserValidator()
	feed := services.NewConsultationFeed(logger)
	defer feed.Close()

	h := handlers.New(memory, engine, validator, feed, logger)

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never fails
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ConcurrencyLimit(cfg.MaxConcurrent))

	// Optional Redis-backed per-IP rate limiting
	if cfg.RedisURI != "" {
		client, err := connectRedis(cfg.RedisURI)
		if err != nil {
			sugar.Warnf("⚠️  Redis unavailable, rate limiting disabled: %v", err)
		} else {
			defer client.Close()
			r.Use(middleware.RateLimit(client))
			sugar.Info("✅ Rate limiting enabled")
		}
	}

	if cfg.AdminKeyHash != "" {
		sugar.Info("✅ Admin key auth enabled")
	} else {
		sugar.Warn("⚠️  ADMIN_KEY_HASH not set; admin endpoints are open")
	}

	// Health check (no auth, no rate limit concerns worth special-casing)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r, h, cfg)

	sugar.Info("📋 Registered routes:")
	sugar.Info("  GET    /health")
	sugar.Info("  POST   /api/users")
	sugar.Info("  GET    /api/consultations")
	sugar.Info("  POST   /api/prophecy")
	sugar.Info("  GET    /api/admin/stats")
	sugar.Info("  GET    /api/admin/users")
	sugar.Info("  GET    /api/admin/export")
	sugar.Info("  DELETE /api/admin/clear")
	sugar.Info("  GET    /ws/consultations")

	sugar.Infof("🌟 Zodiac Prophecy server running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		sugar.Fatalf("Failed to start server: %v", err)
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func connectRedis(uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
