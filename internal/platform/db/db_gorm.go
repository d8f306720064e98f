package db

import (
	"fmt"
	"log/slog"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"goldhouse_backend/internal/platform/config"

	certentity "goldhouse_backend/internal/feature/certificates/domain/entity"
	contactentity "goldhouse_backend/internal/feature/contacts/domain/entity"
	productentity "goldhouse_backend/internal/feature/products/domain/entity"
	userentity "goldhouse_backend/internal/feature/users/domain/entity"
)

// retryInterval is the pause between connection attempts. A variable so
// tests can shorten it.
var retryInterval = 3 * time.Second

// OpenFunc opens a gorm connection for the given DSN. Injected so the
// retry loop can be tested without a database.
type OpenFunc func(dsn string) (*gorm.DB, error)

// ConnectWithRetry attempts to connect until it succeeds or the timeout
// elapses. Containerized Postgres is often still starting when the
// application boots.
func ConnectWithRetry(dsn string, timeout time.Duration, open OpenFunc) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects to PostgreSQL and optionally runs migrations for all
// resource tables.
func OpenDB(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := ConnectWithRetry(cfg.URL, 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		// マイグレーション（User, Contact, Product, Certificate）
		if err := db.AutoMigrate(
			&userentity.User{},
			&contactentity.Contact{},
			&productentity.Product{},
			&certentity.Certificate{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	return db, nil
}
