// Package postgres содержит реализации репозиториев поверх pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notekeep/internal/domain/entities"
	"notekeep/internal/ports/repositories"
	"notekeep/pkg/logger"
)

// PgxPoolInterface описывает операции пула, используемые репозиториями.
// pgxmock.PgxPoolIface реализует этот интерфейс в тестах.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// Код Postgres для нарушения уникального ограничения.
const uniqueViolationCode = "23505"

// UserRepository реализует интерфейс repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

// NewUserRepository создает новый экземпляр репозитория пользователей.
func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// mapUniqueViolation переводит нарушение уникального ограничения в доменную
// ошибку конфликта по имени нарушенного ограничения.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "username") {
		return entities.ErrUsernameTaken
	}
	return entities.ErrEmailTaken
}

// Create создает нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (username, email, password_hash, full_name)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, email, password_hash, full_name, created_at
    `

	var createdUser entities.User
	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName,
	).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.FullName,
		&createdUser.CreatedAt,
	)

	if err != nil {
		if conflict := mapUniqueViolation(err); conflict != nil {
			log.Debug(ctx, "user already exists", zap.String("username", user.Username))
			return nil, conflict
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &createdUser, nil
}

// FindByID находит пользователя по ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, username, email, password_hash, full_name, created_at
        FROM users
        WHERE id = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// FindByUsername находит пользователя по имени.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByUsername"))

	query := `
        SELECT id, username, email, password_hash, full_name, created_at
        FROM users
        WHERE username = $1
    `

	var user entities.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.String("username", username))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by username", zap.Error(err))
		return nil, fmt.Errorf("error querying user by username: %w", err)
	}

	return &user, nil
}

// UpdateProfile выполняет частичное обновление профиля в транзакции.
// Перед обновлением email проверяется принадлежность адреса другому
// пользователю; гонка с конкурирующей регистрацией перехватывается
// ограничением уникальности и откатывает транзакцию.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int64, email, fullName *string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "UpdateProfile"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if email != nil {
		var ownerID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM users WHERE email = $1 AND id <> $2`,
			*email, id,
		).Scan(&ownerID)
		switch {
		case err == nil:
			log.Debug(ctx, "email already owned by another user", zap.Int64("ownerID", ownerID))
			return nil, entities.ErrEmailTaken
		case !errors.Is(err, pgx.ErrNoRows):
			log.Error(ctx, "error checking email ownership", zap.Error(err))
			return nil, fmt.Errorf("error checking email ownership: %w", err)
		}
	}

	query := `
        UPDATE users
        SET email = COALESCE($2, email), full_name = COALESCE($3, full_name)
        WHERE id = $1
        RETURNING id, username, email, password_hash, full_name, created_at
    `

	var updatedUser entities.User
	err = tx.QueryRow(ctx, query, id, email, fullName).Scan(
		&updatedUser.ID,
		&updatedUser.Username,
		&updatedUser.Email,
		&updatedUser.PasswordHash,
		&updatedUser.FullName,
		&updatedUser.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found for update", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		if conflict := mapUniqueViolation(err); conflict != nil {
			log.Debug(ctx, "email conflict detected on update")
			return nil, conflict
		}
		log.Error(ctx, "error updating user profile", zap.Error(err))
		return nil, fmt.Errorf("error updating user profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing transaction", zap.Error(err))
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return &updatedUser, nil
}
