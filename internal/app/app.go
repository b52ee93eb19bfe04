package app

import (
	"context"
	"errors"

	"github.com/priyanshu-101/cb-app-user/internal/messaging/kafka/producer"
	"github.com/priyanshu-101/cb-app-user/internal/middleware"
	"github.com/priyanshu-101/cb-app-user/internal/shared/connection"
	"github.com/priyanshu-101/cb-app-user/internal/shared/filestore"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// NewRouter returns a gin engine with the request-scoped middleware every
// route shares.
func NewRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.ContextLogger(logger))
	return r
}

// BuildApp connects the infrastructure named in cfg and registers every
// module on router. The returned cleanup closes what was opened.
func BuildApp(ctx context.Context, router gin.IRouter, cfg Config) (func(), error) {
	logger := zap.L().Named("app")
	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("close failed", zap.Error(err))
			}
		}
	}

	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return cleanup, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return cleanup, err
	}
	closers = append(closers, sqlDB.Close)
	logger.Info("database connection established", zap.String("driver", cfg.DB.Driver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			return cleanup, err
		}
		closers = append(closers, rdb.Close)
		logger.Info("redis connection established")
	} else {
		logger.Info("REDIS_ADDR not set, site cache and idempotency disabled")
	}

	var publisher EventPublisher
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
		if err != nil {
			return cleanup, err
		}
		closers = append(closers, writer.Close)
		publisher = producer.NewPublisher(writer)
		logger.Info("kafka publisher ready", zap.String("broker", cfg.KafkaBroker))
	} else {
		logger.Info("KAFKA_BROKER not set, domain events are dropped")
	}

	files, err := newFileStore(ctx, cfg)
	if err != nil {
		return cleanup, err
	}

	// 2. Register Modules & Routes
	registerModules(router, Dependencies{
		DB:     db,
		Redis:  rdb,
		Files:  files,
		Events: publisher,
		Logger: zap.L(),
	})
	return cleanup, nil
}

func newFileStore(ctx context.Context, cfg Config) (filestore.Store, error) {
	if cfg.S3Bucket == "" {
		return filestore.NewLocalStore(cfg.UploadDir), nil
	}
	if cfg.AWSRegion == "" {
		return nil, errors.New("AWS_REGION is required when S3_BUCKET is set")
	}
	return filestore.NewS3StoreFromEnv(ctx, cfg.S3Bucket, "leave-attachments", cfg.AWSRegion)
}
