package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"theralert/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *db_models.Activity) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (a *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return a.db.WithContext(ctx).Create(activity).Error
}

func (a *activityRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := a.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (a *activityRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := a.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}
