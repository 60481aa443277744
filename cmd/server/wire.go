//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"careerchat-api/internal/config"
	advisordomain "careerchat-api/internal/domain/advisor"
	domain "careerchat-api/internal/domain/conversation"
	"careerchat-api/internal/infrastructure/advisor"
	"careerchat-api/internal/infrastructure/database"
	"careerchat-api/internal/infrastructure/logger"
	repo "careerchat-api/internal/infrastructure/repository/conversation"
	"careerchat-api/internal/interfaces/httpserver"
)

var conversationSet = wire.NewSet(
	repo.NewPostgresRepository,
	wire.Bind(new(domain.Repository), new(*repo.PostgresRepository)),
	advisor.NewClient,
	wire.Bind(new(advisordomain.Generator), new(*advisor.Client)),
	domain.NewService,
)

// BuildApplication assembles the CareerChat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		conversationSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
