package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"theralert/internal/models/db_models"
	"theralert/internal/models/request_models"
	"theralert/internal/models/response_models"
	"theralert/internal/repositories"
	"theralert/pkg/utils"
)

// placeholderPassword seeds auto-provisioned family accounts. There is no
// invite or reset flow yet, so these accounts cannot log in until one exists.
// TODO: replace with an emailed invite token once the reset flow lands.
const placeholderPassword = "Theralert-Family-1!"

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, staffID string, request request_models.CreateGroupRequest) (uuid.UUID, error)
	ListGroups(ctx context.Context, userID string, role string) ([]response_models.GroupResponse, error)
	DeleteGroup(ctx context.Context, request request_models.DeleteGroupRequest) error
}

type GroupService struct {
	groupRepo repositories.GroupRepository
	userRepo  repositories.UserRepository
	logger    *zap.Logger
}

func NewGroupService(groupRepo repositories.GroupRepository, userRepo repositories.UserRepository, logger *zap.Logger) GroupServiceInterface {
	return &GroupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (g *GroupService) CreateGroup(ctx context.Context, staffID string, request request_models.CreateGroupRequest) (uuid.UUID, error) {
	staff, err := uuid.Parse(staffID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}

	patient, err := g.userRepo.FindByEmailAndRole(ctx, request.PatientEmail, db_models.RolePatient)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if patient == nil {
		return uuid.Nil, utils.ErrPatientNotFound
	}

	placeholderHash, err := utils.HashPassword(placeholderPassword)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	group := &db_models.Group{PatientID: patient.ID, StaffID: staff}
	groupID, err := g.groupRepo.CreateWithMembers(ctx, group, request.FamilyEmails, placeholderHash)
	if err != nil {
		g.logger.Error("group creation rolled back", zap.Error(err))
		return uuid.Nil, utils.ErrDatabaseError
	}

	g.logger.Info("group created",
		zap.String("group_id", groupID.String()),
		zap.Int("family_members", len(request.FamilyEmails)))
	return groupID, nil
}

func (g *GroupService) ListGroups(ctx context.Context, userID string, role string) ([]response_models.GroupResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var groups []db_models.Group
	if role == db_models.RoleStaff {
		groups, err = g.groupRepo.ListByStaff(ctx, id)
	} else {
		groups, err = g.groupRepo.ListByPatientOrMember(ctx, id)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.GroupResponse, 0, len(groups))
	for _, group := range groups {
		out = append(out, response_models.GroupResponse{
			ID:        group.ID.String(),
			PatientID: group.PatientID.String(),
			StaffID:   group.StaffID.String(),
			CreatedAt: utils.FormatRFC3339(group.CreatedAt),
		})
	}
	return out, nil
}

func (g *GroupService) DeleteGroup(ctx context.Context, request request_models.DeleteGroupRequest) error {
	groupID, err := uuid.Parse(request.GroupID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := g.groupRepo.DeleteCascade(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrGroupNotFound
		}
		return utils.ErrDatabaseError
	}

	g.logger.Info("group deleted", zap.String("group_id", groupID.String()))
	return nil
}
