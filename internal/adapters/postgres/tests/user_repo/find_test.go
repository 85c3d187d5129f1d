package userrepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/adapters/postgres"
	"notekeep/internal/domain/entities"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	ctx := testContext(t)

	storedUser := entities.User{
		ID:           7,
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Test User",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	t.Run("Успешный поиск пользователя по имени", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs(storedUser.Username).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "full_name", "created_at"}).
					AddRow(storedUser.ID, storedUser.Username, storedUser.Email, storedUser.PasswordHash, storedUser.FullName, storedUser.CreatedAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, storedUser.Username)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, storedUser.ID, user.ID)
		assert.Equal(t, storedUser.Username, user.Username)
		assert.Equal(t, storedUser.Email, user.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, "ghost")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД при поиске", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs(storedUser.Username).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByUsername(ctx, storedUser.Username)

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error querying user by username")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешный поиск пользователя по ID", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		createdAt := time.Now().UTC().Truncate(time.Microsecond)
		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs(int64(7)).
			WillReturnRows(
				pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "full_name", "created_at"}).
					AddRow(int64(7), "testuser", "test@example.com", "hashed_password", "Test User", createdAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, 7)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "testuser", user.Username)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM users").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, 404)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
