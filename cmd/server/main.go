package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nurikhwanidris/urusmasjid/internal/di"
	"github.com/nurikhwanidris/urusmasjid/internal/router"
	"github.com/nurikhwanidris/urusmasjid/migrations"
	"github.com/nurikhwanidris/urusmasjid/pkg/config"
	"github.com/nurikhwanidris/urusmasjid/pkg/database"
	"github.com/nurikhwanidris/urusmasjid/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	if err := logger.Init(&logger.Config{
		Level:       logLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
		OutputPath:  "stdout",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Get()
	defer log.Sync() //nolint:errcheck

	log.Info("starting", zap.String("service", cfg.App.Name), zap.String("environment", cfg.App.Environment))

	db, err := database.Connect(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
	})
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	log.Info("database connected", zap.String("host", cfg.Database.Host), zap.String("dbname", cfg.Database.DBName))

	if cfg.Database.MigrateOnStart {
		if err := database.MigrateUp(migrations.FS, ".", cfg.Database.URL()); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
		log.Info("migrations applied")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	defer redisClient.Close()

	// Redis only backs the prayer-times cache; a missing cache degrades
	// lookups but must not prevent startup.
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, prayer times will skip the cache", zap.Error(err))
	} else {
		log.Info("redis connected", zap.String("addr", cfg.Redis.Addr()))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	container := di.NewContainer(cfg, db, redisClient)
	engine := router.Setup(cfg, container)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown error", zap.Error(err))
	}

	log.Info("shutdown complete")
}
