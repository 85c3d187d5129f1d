// Package services определяет интерфейсы прикладных сервисов.
package services

import "context"

// PasswordService определяет операции хэширования и проверки пароля.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify возвращает false без ошибки и для неверного пароля,
	// и для поврежденного хэша.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
