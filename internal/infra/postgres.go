package infra

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"theralert/internal/config"
	"theralert/internal/models/db_models"
)

// InitPostgresql opens the connection pool and migrates the schema. The
// returned handle is the only pool in the process; it is injected, never
// reached through a package-level singleton.
func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.PostgresURL == "" {
		return nil, errors.New("POSTGRES_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Group{},
		&db_models.GroupMember{},
		&db_models.Activity{},
		&db_models.Notification{},
	); err != nil {
		return nil, err
	}

	log.Info("postgres connection established")
	return db, nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Warn("could not obtain underlying sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("error closing postgres connection", zap.Error(err))
		return
	}
	log.Info("postgres connection closed")
}
