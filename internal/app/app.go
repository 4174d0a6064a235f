package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"rhplus/internal/config"
	"rhplus/internal/middleware"
	"rhplus/internal/shared/connection"
	"rhplus/internal/shared/storage"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Infra holds the connections shared by the API, the worker and the
// consumer processes.
type Infra struct {
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
	Files  storage.FileStorage
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

func connectDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(connection.DatabaseOptions{
		Host:            cfg.Database.Host,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Name:            cfg.Database.Name,
		Port:            cfg.Database.Port,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, cfg.Database.MaxRetries, logger)
	if err != nil {
		return nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// newPayslipStorage returns the configured payslip backend.
func newPayslipStorage(ctx context.Context, cfg *config.Config) (storage.FileStorage, error) {
	switch cfg.Payslip.Driver {
	case "minio":
		client, err := connection.ConnectMinio(ctx,
			cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			return nil, fmt.Errorf("connect minio: %w", err)
		}
		return storage.NewMinioStorage(client, cfg.MinIO.Bucket), nil
	default:
		return storage.NewLocalStorage(cfg.Payslip.StorageDir, cfg.Payslip.PublicBaseURL)
	}
}

// NewInfra connects Postgres and the payslip storage. Redis is connected
// only when withRedis is set.
func NewInfra(ctx context.Context, cfg *config.Config, logger *zap.Logger, withRedis bool) (*Infra, error) {
	gormDB, sqlDB, err := connectDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, DB: sqlDB}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Database.MaxRetries, logger)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	}

	files, err := newPayslipStorage(ctx, cfg)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Files = files

	return infra, nil
}

// BuildApp wires every module behind a gin engine.
func BuildApp(cfg *config.Config, infra *Infra, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Metrics(),
		middleware.RateLimitByIP(rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.AuthMiddleware(cfg.JWT.Secret)

	if cfg.Payslip.Driver == "local" && strings.HasPrefix(cfg.Payslip.PublicBaseURL, "/") {
		files := router.Group(cfg.Payslip.PublicBaseURL, auth)
		files.Static("/", cfg.Payslip.StorageDir)
	}

	if err := registerModules(router, cfg, infra, auth, logger); err != nil {
		return nil, err
	}

	return router, nil
}
