// Package sqlite implements the repository on a single-file SQLite database via gorm.
package sqlite

import (
	"context"
	"fmt"

	"freelance-flow/config"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLite wraps a gorm handle and configuration.
type SQLite struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *gorm.DB
	cfg     config.SQLiteConfig
}

// New creates a SQLite repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		baseCtx: ctx,
		log:     log.Named("repo.sqlite"),
		cfg:     cfg.SQLite,
	}
}

// OnStart opens the database file and migrates the schema.
func (s *SQLite) OnStart(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(s.cfg.Path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	if s.cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(s.cfg.MaxOpenConns)
	}

	if err := db.WithContext(s.baseCtx).AutoMigrate(
		&userModel{},
		&projectModel{},
		&memberModel{},
		&taskModel{},
		&messageModel{},
	); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	s.db = db
	s.log.Infow("sqlite ready", "path", s.cfg.Path)
	return nil
}

// OnStop closes the underlying connections.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
