package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"theralert/internal/models/db_models"
	"theralert/internal/models/request_models"
	"theralert/internal/models/response_models"
	"theralert/internal/repositories"
	"theralert/pkg/utils"
)

type ActivityServiceInterface interface {
	LogActivity(ctx context.Context, request request_models.LogActivityRequest) (*response_models.ActivityResponse, error)
	ListActivities(ctx context.Context, groupID string) ([]response_models.ActivityResponse, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	notifier     NotificationServiceInterface
	logger       *zap.Logger
}

func NewActivityService(activityRepo repositories.ActivityRepository, notifier NotificationServiceInterface, logger *zap.Logger) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (a *ActivityService) LogActivity(ctx context.Context, request request_models.LogActivityRequest) (*response_models.ActivityResponse, error) {
	groupID, err := uuid.Parse(request.GroupID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	kind := db_models.KindActivity
	if request.IsGoal {
		kind = db_models.KindGoal
	}

	activity := &db_models.Activity{
		GroupID:     groupID,
		Activity:    request.Activity,
		Description: request.Description,
		Kind:        kind,
	}
	if err := a.activityRepo.Insert(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Re-read for the canonical server-assigned timestamp.
	stored, err := a.activityRepo.FindById(ctx, activity.ID)
	if err != nil || stored == nil {
		return nil, utils.ErrDatabaseError
	}

	// Best effort: the response waits for the attempt, but a failed send
	// never turns a successful insert into an error.
	if err := a.notifier.NotifyNewActivity(ctx, stored); err != nil {
		a.logger.Warn("activity logged but notification failed",
			zap.String("activity_id", stored.ID.String()), zap.Error(err))
	}

	return toActivityResponse(stored), nil
}

func (a *ActivityService) ListActivities(ctx context.Context, groupID string) ([]response_models.ActivityResponse, error) {
	id, err := uuid.Parse(groupID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	activities, err := a.activityRepo.ListByGroup(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivityResponse, 0, len(activities))
	for i := range activities {
		out = append(out, *toActivityResponse(&activities[i]))
	}
	return out, nil
}

func toActivityResponse(activity *db_models.Activity) *response_models.ActivityResponse {
	return &response_models.ActivityResponse{
		ID:          activity.ID.String(),
		GroupID:     activity.GroupID.String(),
		Activity:    activity.Activity,
		Description: activity.Description,
		IsGoal:      activity.IsGoal(),
		CreatedAt:   utils.FormatRFC3339(activity.CreatedAt),
	}
}
