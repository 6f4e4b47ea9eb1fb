package app

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketplace/cmd/identity"
	"marketplace/cmd/internal/auth/session"
	"marketplace/cmd/internal/merchant"
	"marketplace/cmd/internal/product"
)

// NewDB opens the database, applies pool settings, validates connectivity and
// migrates the schema. Postgres (through the pgx stdlib driver) when
// DatabaseURL is set, a local sqlite file otherwise.
func NewDB(ctx context.Context, cfg Config, log Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
		sqlDB.SetMaxIdleConns(cfg.DBIdleConns)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)

		db, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormCfg)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("db.postgres", "max_conns", cfg.DBMaxConns)
	} else {
		var err error
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
		if err != nil {
			return nil, err
		}
		log.Info("db.sqlite", "path", cfg.SQLitePath)
	}

	if err := PingDB(ctx, db, 3*time.Second); err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&identity.User{},
		&session.Session{},
		&merchant.Merchant{},
		&product.Category{},
		&product.Item{},
		&product.Pricing{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// PingDB checks connectivity within timeout.
func PingDB(parent context.Context, db *gorm.DB, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// CloseDB releases the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
