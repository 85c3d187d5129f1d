package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"notekeep/internal/domain/services"
	svc "notekeep/internal/ports/services"
	"notekeep/pkg/logger"
)

const (
	errMsgFailedToGenerateHash = "failed to generate password hash"
	errMsgPasswordTooShort     = "password is too short"

	msgMalformedHash = "stored password hash is malformed"
)

// ServiceBcrypt реализует интерфейс PasswordService.
type ServiceBcrypt struct {
	cost int
}

// NewBcrypt создает новый экземпляр сервиса bcrypt. Стоимость ниже
// минимально допустимой заменяется стоимостью по умолчанию.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceBcrypt{cost: cost}
}

// Hash хэширует пароль с помощью bcrypt. Соль генерируется для каждого
// вызова и встроена в результат.
func (s *ServiceBcrypt) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", services.ErrInvalidPassword
	}

	if len(password) < services.MinPasswordLength {
		return "", fmt.Errorf("%s: %w", errMsgPasswordTooShort, services.ErrInvalidPassword)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMsgFailedToGenerateHash, services.ErrHashingFailed)
	}

	return string(hashedBytes), nil
}

// Verify проверяет соответствие пароля хэшу. Поврежденный хэш трактуется
// как несовпадение, а не как ошибка.
func (s *ServiceBcrypt) Verify(ctx context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Log(ctx).Debug(ctx, msgMalformedHash)
		}
		return false, nil
	}

	return true, nil
}
