package userusecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notekeep/internal/app"
	"notekeep/internal/domain/entities"
)

var ErrDatabaseConnection = errors.New("database connection error")

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id int64, email, fullName *string) (*entities.User, error) {
	args := m.Called(ctx, id, email, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success - profile returned", func(t *testing.T) {
		repo := new(mockUserRepository)
		stored := &entities.User{ID: 7, Username: "testuser", Email: "test@example.com"}
		repo.On("FindByID", mock.Anything, int64(7)).Return(stored, nil).Once()

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.GetProfile(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, stored, user)
		repo.AssertExpectations(t)
	})

	t.Run("error - user not found", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByID", mock.Anything, int64(404)).Return(nil, entities.ErrUserNotFound).Once()

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.GetProfile(ctx, 404)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
		repo.AssertExpectations(t)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success - email and name updated", func(t *testing.T) {
		repo := new(mockUserRepository)
		email := strPtr("updated@example.com")
		name := strPtr("Updated User")
		updated := &entities.User{ID: 7, Username: "testuser", Email: *email, FullName: *name}
		repo.On("UpdateProfile", mock.Anything, int64(7), email, name).Return(updated, nil).Once()

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.UpdateProfile(ctx, 7, email, name)

		require.NoError(t, err)
		assert.Equal(t, updated, user)
		repo.AssertExpectations(t)
	})

	t.Run("success - nil fields keep previous values", func(t *testing.T) {
		repo := new(mockUserRepository)
		stored := &entities.User{ID: 7, Username: "testuser", Email: "test@example.com", FullName: "Test User"}
		repo.On("UpdateProfile", mock.Anything, int64(7), (*string)(nil), (*string)(nil)).
			Return(stored, nil).Once()

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.UpdateProfile(ctx, 7, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, stored, user)
		repo.AssertExpectations(t)
	})

	t.Run("error - invalid email rejected before repository call", func(t *testing.T) {
		repo := new(mockUserRepository)

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.UpdateProfile(ctx, 7, strPtr("not-an-email"), nil)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrInvalidEmail)
		repo.AssertExpectations(t)
	})

	t.Run("error - email taken by another user", func(t *testing.T) {
		repo := new(mockUserRepository)
		email := strPtr("taken@example.com")
		repo.On("UpdateProfile", mock.Anything, int64(7), email, (*string)(nil)).
			Return(nil, entities.ErrEmailTaken).Once()

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.UpdateProfile(ctx, 7, email, nil)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
		repo.AssertExpectations(t)
	})

	t.Run("error - repository failure", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("UpdateProfile", mock.Anything, int64(7), (*string)(nil), (*string)(nil)).
			Return(nil, ErrDatabaseConnection).Once()

		useCase := app.NewUserUseCase(repo)
		user, err := useCase.UpdateProfile(ctx, 7, nil, nil)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrDatabaseConnection)
		repo.AssertExpectations(t)
	})
}
