package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notekeep/internal/domain/entities"
	"notekeep/internal/ports/api"
	"notekeep/internal/ports/repositories"
	"notekeep/pkg/logger"
)

const (
	methodGetProfile    = "GetProfile"
	methodUpdateProfile = "UpdateProfile"

	msgRequestingProfile = "requesting user profile"
	msgProfileRetrieved  = "user profile successfully retrieved"
	msgUpdatingProfile   = "updating user profile"
	msgProfileUpdated    = "user profile successfully updated"

	msgErrFindingUserByID = "failed to find user by ID"
	msgErrUpdatingProfile = "failed to update user profile"

	errCtxFetchingProfile = "fetching user profile"
	errCtxUpdatingProfile = "updating user profile"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сценария работы с профилем.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
	}
}

// GetProfile получает профиль пользователя по ID.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.Int64("userID", userID))
	log.Debug(ctx, msgRequestingProfile)

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	log.Info(ctx, msgProfileRetrieved)
	return user, nil
}

// UpdateProfile выполняет частичное обновление профиля: nil-поля сохраняют
// прежнее значение. Смена email на занятый адрес возвращает конфликт.
func (u *UserUseCaseImpl) UpdateProfile(ctx context.Context, userID int64, email, fullName *string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProfile), zap.Int64("userID", userID))
	log.Debug(ctx, msgUpdatingProfile)

	if email != nil {
		if err := validateEmail(*email); err != nil {
			log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
		}
	}

	updated, err := u.userRepo.UpdateProfile(ctx, userID, email, fullName)
	if err != nil {
		log.Error(ctx, msgErrUpdatingProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProfile, err)
	}

	log.Info(ctx, msgProfileUpdated)
	return updated, nil
}
