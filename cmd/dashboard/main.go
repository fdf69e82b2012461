package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pharmatrack/config"
	invgateway "pharmatrack/internal/inventory/gateway"
	invhandler "pharmatrack/internal/inventory/handler"
	invstore "pharmatrack/internal/inventory/store"
	"pharmatrack/internal/logger"
	"pharmatrack/internal/middleware"
	"pharmatrack/internal/prefs"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Initialize Remote Gateway and Store
	gw := invgateway.NewREST(cfg.Backend.BaseURL, cfg.Backend.Timeout, appLogger)
	store := invstore.New(gw, appLogger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.Backend.Timeout+time.Second)
	store.Load(loadCtx)
	cancelLoad()
	appLogger.Info("Inventory store initialized",
		zap.String("mode", string(store.Mode())),
		zap.Int("medicines", len(store.Medicines())),
		zap.Int("alerts", len(store.Alerts())))

	// 4. Initialize Preference Store (optional)
	var prefStore *prefs.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			appLogger.Warn("Could not connect to Redis (preferences disabled)", zap.Error(err))
			rdb.Close()
		} else {
			defer rdb.Close()
			prefStore = prefs.NewStore(rdb)
			p, err := prefStore.Load(context.Background())
			if err != nil {
				appLogger.Warn("Failed to load preferences", zap.Error(err))
			} else {
				appLogger.Info("Loaded preferences", zap.String("theme", p.Theme))
			}
		}
	}

	// 5. Build Router
	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	if rl, err := middleware.RateLimit(cfg.RateLimit.Rate); err != nil {
		appLogger.Warn("Invalid rate limit, throttling disabled", zap.Error(err))
	} else {
		r.Use(rl)
	}

	h := invhandler.NewInventoryHandler(store, prefStore, appLogger)
	h.Register(r.Group("/api/v1"))

	// 6. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
