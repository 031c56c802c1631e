package services

import (
	"context"

	"go.uber.org/zap"

	"theralert/internal/models/db_models"
	"theralert/internal/repositories"
	"theralert/pkg/utils"
)

type NotificationServiceInterface interface {
	// NotifyNewActivity resolves the group's recipients and sends one email.
	// The returned error is informational; callers must not fail the request
	// on it.
	NotifyNewActivity(ctx context.Context, activity *db_models.Activity) error
}

type NotificationService struct {
	groupRepo        repositories.GroupRepository
	notificationRepo repositories.NotificationRepository
	mailService      IMailService
	logger           *zap.Logger
}

func NewNotificationService(
	groupRepo repositories.GroupRepository,
	notificationRepo repositories.NotificationRepository,
	mailService IMailService,
	logger *zap.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		groupRepo:        groupRepo,
		notificationRepo: notificationRepo,
		mailService:      mailService,
		logger:           logger,
	}
}

func (n *NotificationService) NotifyNewActivity(ctx context.Context, activity *db_models.Activity) error {
	emails, err := n.groupRepo.RecipientEmails(ctx, activity.GroupID)
	if err != nil {
		n.logger.Warn("recipient resolution failed",
			zap.String("group_id", activity.GroupID.String()), zap.Error(err))
		return err
	}

	recipients := dedupePreservingOrder(emails)
	if len(recipients) == 0 {
		n.logger.Warn("no recipients resolved, skipping notification",
			zap.String("group_id", activity.GroupID.String()))
		return nil
	}

	mail := ActivityMail{
		Activity:    activity.Activity,
		Description: activity.Description,
		LoggedAt:    utils.FormatFriendly(activity.CreatedAt),
		IsGoal:      activity.IsGoal(),
	}

	sendErr := n.mailService.SendActivityAlert(recipients, mail)

	record := &db_models.Notification{
		GroupID:    activity.GroupID,
		ActivityID: activity.ID,
		Recipients: recipients,
		Subject:    activity.Activity,
		Delivered:  sendErr == nil,
	}
	if sendErr != nil {
		record.Error = sendErr.Error()
	}
	if err := n.notificationRepo.Insert(ctx, record); err != nil {
		n.logger.Warn("could not record notification attempt", zap.Error(err))
	}

	if sendErr != nil {
		n.logger.Warn("notification send failed",
			zap.String("activity_id", activity.ID.String()),
			zap.Strings("recipients", recipients),
			zap.Error(sendErr))
		return sendErr
	}

	n.logger.Info("notification sent",
		zap.String("activity_id", activity.ID.String()),
		zap.Int("recipients", len(recipients)))
	return nil
}

// dedupePreservingOrder drops exact duplicate addresses, keeping first-seen
// order. Matching is case-sensitive.
func dedupePreservingOrder(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, email := range emails {
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}
