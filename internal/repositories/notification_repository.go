package repositories

import (
	"context"

	"gorm.io/gorm"

	"theralert/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}
