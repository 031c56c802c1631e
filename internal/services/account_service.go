package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"theralert/internal/models/db_models"
	"theralert/internal/models/request_models"
	"theralert/internal/repositories"
	"theralert/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, string, error)
	ChangePassword(ctx context.Context, request request_models.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID string, password string) error
}

type AccountService struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	logger    *zap.Logger
}

func NewAccountService(userRepo repositories.UserRepository, jwtSecret string, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.RegisterRequest) (uuid.UUID, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return uuid.Nil, utils.ErrEmailAlreadyExists
	}

	if err := utils.ValidatePassword(request.Password); err != nil {
		return uuid.Nil, err
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashed,
		Role:         request.Role,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	return user.ID, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(a.jwtSecret, user.ID, user.Role)
	if err != nil {
		a.logger.Error("token signing failed", zap.Error(err))
		return "", "", utils.ErrInvalidCredentials
	}

	return token, user.Role, nil
}

func (a *AccountService) ChangePassword(ctx context.Context, request request_models.ChangePasswordRequest) error {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	if err := utils.ValidatePassword(request.NewPassword); err != nil {
		return err
	}

	// Reject a "new" password identical to the stored one.
	if utils.ComparePasswords(user.PasswordHash, request.NewPassword) == nil {
		return utils.ErrPasswordReused
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, userID string, password string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrUserNotFound
	}

	user, err := a.userRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, password); err != nil {
		return utils.ErrInvalidCredentials
	}

	if err := a.userRepo.Delete(ctx, user.ID); err != nil {
		return utils.ErrDatabaseError
	}

	a.logger.Info("account deleted", zap.String("user_id", user.ID.String()))
	return nil
}
