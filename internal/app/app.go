package app

import (
	"context"
	"net/http"
	"time"

	"go-attendance/internal/config"
	"go-attendance/internal/shared/connection"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the stores, registers every module on router and returns
// a function that releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	router.GET("/health", healthHandler(gormDB, redisClient))

	if err := registerModules(router, cfg, sqlDB, gormDB, redisClient, zap.L()); err != nil {
		_ = redisClient.Close()
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}
	return cleanup, nil
}

func healthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := map[string]string{"database": "up", "redis": "up"}
		healthy := true

		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "down"
			healthy = false
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "down"
			healthy = false
		}

		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "dependency unavailable", status)
			return
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
