package userrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/adapters/postgres"
	"notekeep/internal/domain/entities"
	"notekeep/pkg/logger"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)

	inputUser := &entities.User{
		Username:     "newuser",
		Email:        "new@example.com",
		PasswordHash: "hashed_new_password",
		FullName:     "New User",
	}

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Username, inputUser.Email, inputUser.PasswordHash, inputUser.FullName).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "full_name", "created_at"}).
					AddRow(int64(1), inputUser.Username, inputUser.Email, inputUser.PasswordHash, inputUser.FullName, createdAt),
			)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		require.NoError(t, err)
		assert.NotNil(t, createdUser)
		assert.Equal(t, int64(1), createdUser.ID)
		assert.Equal(t, inputUser.Username, createdUser.Username)
		assert.Equal(t, inputUser.Email, createdUser.Email)
		assert.Equal(t, inputUser.PasswordHash, createdUser.PasswordHash)
		assert.Equal(t, inputUser.FullName, createdUser.FullName)
		assert.Equal(t, createdAt, createdUser.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Конфликт по имени пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Username, inputUser.Email, inputUser.PasswordHash, inputUser.FullName).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		assert.ErrorIs(t, err, entities.ErrUsernameTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Конфликт по email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Username, inputUser.Email, inputUser.PasswordHash, inputUser.FullName).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		assert.ErrorIs(t, err, entities.ErrEmailTaken)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при создании пользователя - общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Username, inputUser.Email, inputUser.PasswordHash, inputUser.FullName).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
