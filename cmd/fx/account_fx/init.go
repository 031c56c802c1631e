package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"theralert/internal/config"
	"theralert/internal/repositories"
	"theralert/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, cfg *config.Config, log *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, cfg.JWTSecret, log)
}
