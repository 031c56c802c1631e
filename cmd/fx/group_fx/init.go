package group_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"theralert/internal/repositories"
	"theralert/internal/services"
)

var Module = fx.Provide(
	provideGroupRepo, provideGroupService)

func provideGroupRepo(db *gorm.DB) repositories.GroupRepository {
	return repositories.NewGroupRepository(db)
}

func provideGroupService(groupRepo repositories.GroupRepository, userRepo repositories.UserRepository, log *zap.Logger) services.GroupServiceInterface {
	return services.NewGroupService(groupRepo, userRepo, log)
}
