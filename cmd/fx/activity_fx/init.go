package activity_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"theralert/internal/repositories"
	"theralert/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	notifier services.NotificationServiceInterface,
	log *zap.Logger,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, notifier, log)
}
