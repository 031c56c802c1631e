package notification_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"theralert/internal/repositories"
	"theralert/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(
	groupRepo repositories.GroupRepository,
	notificationRepo repositories.NotificationRepository,
	mailService services.IMailService,
	log *zap.Logger,
) services.NotificationServiceInterface {
	return services.NewNotificationService(groupRepo, notificationRepo, mailService, log)
}
