// Package main is the entry point for the simulated wallet backend.
// It loads configuration, builds the state container with its persistence
// port, sets up the HTTP server, and runs until interrupted.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"paisa/internal/config"
	"paisa/internal/routes"
	"paisa/internal/store"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	zlog, err := newLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	port, cleanup, err := newStorePort(cfg.Store)
	if err != nil {
		zlog.Fatal("failed to set up snapshot store", zap.Error(err))
	}
	defer cleanup()

	container := store.NewContainer(port, zlog.Named("store"))
	if err := container.Hydrate(context.Background()); err != nil {
		zlog.Fatal("failed to hydrate snapshot", zap.Error(err))
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, cfg, container, zlog)

	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			zlog.Fatal("server stopped", zap.Error(err))
		}
	}()
	zlog.Info("server started", zap.String("port", cfg.Server.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	if err := container.Flush(context.Background()); err != nil {
		zlog.Warn("final snapshot flush failed", zap.Error(err))
	}
	if err := app.Shutdown(); err != nil {
		zlog.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newStorePort builds the snapshot persistence port from configuration:
// Redis when configured, in-process memory otherwise.
func newStorePort(cfg config.StoreConfig) (store.Port, func(), error) {
	if cfg.Backend != config.StoreBackendRedis {
		return store.NewMemoryPort(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Printf("failed to close redis connection: %v", err)
		}
	}
	return store.NewRedisPort(client, cfg.SnapshotKey), cleanup, nil
}
