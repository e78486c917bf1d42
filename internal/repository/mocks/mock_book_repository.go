package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sc-task/internal/model"
)

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	if f, ok := args.Get(0).(func(context.Context, *model.Book) *model.Book); ok {
		return f(ctx, book), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) LinkAuthor(ctx context.Context, bookID, authorID string) error {
	args := m.Called(ctx, bookID, authorID)
	return args.Error(0)
}

func (m *MockBookRepository) SetFile(ctx context.Context, bookID, filename string) error {
	args := m.Called(ctx, bookID, filename)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
