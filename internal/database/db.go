package database

import (
	"context"
	"fmt"
	"time"

	"pulseauto/internal/model"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens a GORM connection pool, retrying with exponential backoff
// while postgres is still coming up, then migrates the dealership models.
func NewConnection(ctx context.Context, dsn string, maxTries int, log *zap.Logger) (*gorm.DB, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	notify := func(err error, wait time.Duration) {
		log.Warn("Database not reachable, retrying", zap.Error(err), zap.Duration("backoff", wait))
	}

	open := func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		return db, nil
	}

	db, err := backoff.Retry(ctx, open,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(maxTries)),
		backoff.WithNotify(notify))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// Auto-migrate dealership models
	err = db.AutoMigrate(
		&model.Vehicle{},
		&model.Lead{},
		&model.Customer{},
		&model.Deal{},
		&model.RepairShop{},
		&model.AuditLog{},
	)
	if err != nil {
		log.Warn("Failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}

// Ping reports whether the pool can still reach postgres
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
