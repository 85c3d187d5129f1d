package noteusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notekeep/internal/domain/entities"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, noteID, ownerID int64) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, noteID, ownerID int64, title, content *string) (*entities.Note, error) {
	args := m.Called(ctx, noteID, ownerID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	return m.Called(ctx, noteID, ownerID).Error(0)
}

func strPtr(s string) *string {
	return &s
}
