package database

import (
	"fmt"
	log "log/slog"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/config"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewGormDB opens the MySQL connection, configures the pool and
// migrates the board schema.
func NewGormDB(cfg *config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:      logger.NewGormLogger(),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdle)
	sqlDB.SetMaxOpenConns(cfg.MaxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database connection check failed: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Post{},
		&model.Comment{},
		&model.Like{},
	); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}
