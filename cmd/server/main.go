package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/t77yq/alerthub/internal/model"
	"github.com/t77yq/alerthub/internal/schedule"
	"github.com/t77yq/alerthub/internal/storage"
	"github.com/t77yq/alerthub/internal/store"
)

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.SetDefault("storage.backend", "sqlite")
	viper.SetDefault("storage.key", store.DefaultStorageKey)
	viper.SetDefault("storage.sqlite_path", "alerts.db")
	if err := viper.ReadInConfig(); err != nil {
		logger.Fatal("Failed to read config file", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Open the key-value slot backing the alert collection
	var kv storage.KV
	backend := viper.GetString("storage.backend")
	switch backend {
	case "redis":
		redisKV, err := storage.NewRedisKV(ctx,
			viper.GetString("storage.redis.addr"),
			viper.GetString("storage.redis.password"),
			viper.GetInt("storage.redis.db"))
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer redisKV.Close()
		kv = redisKV
	case "memory":
		kv = storage.NewMemoryKV()
	case "sqlite":
		sqliteKV, err := storage.NewSQLiteKV(logger, viper.GetString("storage.sqlite_path"))
		if err != nil {
			logger.Fatal("Failed to open alert database", zap.Error(err))
		}
		defer sqliteKV.Close()
		kv = sqliteKV
	default:
		logger.Fatal("Unknown storage backend", zap.String("backend", backend))
	}

	logger.Info("Storage ready", zap.String("backend", backend))

	// Create the alert store and load the collection
	alerts := store.NewAlertStore(logger, kv, viper.GetString("storage.key"))
	defer alerts.Close()

	alerts.Load(ctx)
	if err := alerts.Err(); err != nil {
		logger.Warn("Serving seed data after storage failure", zap.Error(err))
	}

	collection := alerts.Alerts()
	active := 0
	for _, alert := range collection {
		if alert.IsActive {
			active++
		}
	}
	logger.Info("Alert store ready",
		zap.Int("alerts", len(collection)),
		zap.Int("active", active))

	// Report upcoming digest deliveries
	now := time.Now()
	for _, alert := range collection {
		if !model.IsScheduledAlert(alert) || !alert.IsActive {
			continue
		}
		cfg, ok := alert.Config.(*model.ScheduledConfig)
		if !ok {
			continue
		}

		next, err := schedule.NextDelivery(*cfg, now)
		if err != nil {
			logger.Warn("Skipping digest with invalid schedule",
				zap.String("alert_id", alert.ID),
				zap.Error(err))
			continue
		}

		covered := schedule.DigestAlerts(collection, *cfg)
		logger.Info("Scheduled digest",
			zap.String("alert_id", alert.ID),
			zap.String("name", alert.Name),
			zap.Time("next_delivery", next),
			zap.Int("covered_alerts", len(covered)))
	}

	// Setup signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	}()

	<-ctx.Done()

	logger.Info("Server shutting down gracefully")
}
