package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kariqs/amexan-checkout/initializers"
	"github.com/Kariqs/amexan-checkout/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	initializers.LoadEnv()

	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	initializers.Config = cfg

	if err := initializers.InitLogger(cfg); err != nil {
		log.Fatalf("error initializing logger: %v", err)
	}
	if err := initializers.ConnectToDB(cfg); err != nil {
		initializers.Logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := initializers.SyncDatabase(); err != nil {
		initializers.Logger.Fatal("database migration failed", zap.Error(err))
	}
	initializers.InitSessions(cfg)
}

func main() {
	cfg := initializers.Config
	logger := initializers.Logger
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.Register(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go initializers.SweepSessions(ctx, cfg.SweepEvery)

	srv := &http.Server{
		Addr:    cfg.Address(),
		Handler: server,
	}
	go func() {
		logger.Info("Checkout API listening",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("Checkout API stopped")
}
