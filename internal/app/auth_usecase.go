// Package app реализует прикладную бизнес-логику сервиса.
package app

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"notekeep/internal/domain/entities"
	"notekeep/internal/domain/services"
	"notekeep/internal/ports/api"
	"notekeep/internal/ports/repositories"
	svc "notekeep/internal/ports/services"
	"notekeep/pkg/logger"
)

const (
	methodSignup = "Signup"
	methodLogin  = "Login"

	msgStartSignup         = "starting user signup"
	msgInvalidUsername     = "invalid username"
	msgInvalidEmailFormat  = "invalid email format"
	msgInvalidPassword     = "invalid password"
	msgUserCreated         = "user created successfully"
	msgLoginAttempt        = "login attempt"
	msgLoginNonExistent    = "login attempt with non-existent username"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in successfully"

	msgErrHashPassword  = "failed to hash password"
	msgErrCreateUser    = "failed to create user"
	msgErrFindingUser   = "error finding user by username"
	msgErrVerifyPass    = "error verifying password"
	msgErrGenerateToken = "failed to generate access token"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingEmail    = "validating email"
	errCtxValidatingPassword = "validating password"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxGeneratingToken    = "generating token"
)

// Максимальная длина имени пользователя.
const maxUsernameLength = 50

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сценария аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Signup регистрирует нового пользователя. Ошибки валидации и конфликты
// уникальности возвращаются различимыми доменными ошибками.
func (a *AuthUseCaseImpl) Signup(ctx context.Context, username, email, password, fullName string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignup), zap.String("username", username))
	log.Debug(ctx, msgStartSignup)

	if err := validateUsername(username); err != nil {
		log.Debug(ctx, msgInvalidUsername, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, err)
	}
	if err := validateEmail(email); err != nil {
		log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	newUser := &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     fullName,
	}

	// Дубликаты username/email перехватываются ограничениями уникальности
	// хранилища, поэтому предварительная проверка не нужна и гонки нет.
	createdUser, err := a.userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) || errors.Is(err, entities.ErrEmailTaken) {
			log.Debug(ctx, msgErrCreateUser, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserCreated, zap.Int64("userID", createdUser.ID))
	return createdUser, nil
}

// Login аутентифицирует пользователя и выпускает токен доступа.
// Неизвестное имя и неверный пароль возвращают одинаковую ошибку.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return "", time.Time{}, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPass, zap.Error(err), zap.Int64("userID", user.ID))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPasswordAuth, zap.Int64("userID", user.ID))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	token, expiresAt, err := a.tokenSvc.Generate(ctx, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.Int64("userID", user.ID))
		return "", time.Time{}, fmt.Errorf("%s: %w", errCtxGeneratingToken, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return token, expiresAt, nil
}

// Валидация имени пользователя: минимум 3 символа, буквы, цифры
// и подчеркивание.
func validateUsername(username string) error {
	if len(username) < 3 || len(username) > maxUsernameLength {
		return entities.ErrInvalidUsername
	}
	if !usernameRegex.MatchString(username) {
		return entities.ErrInvalidUsername
	}
	return nil
}

// Валидация email.
func validateEmail(email string) error {
	if email == "" || !emailRegex.MatchString(email) {
		return entities.ErrInvalidEmail
	}
	return nil
}

// Валидация пароля.
func validatePassword(password string) error {
	if len(password) < services.MinPasswordLength {
		return services.ErrInvalidPassword
	}
	return nil
}
