package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/service"
)

type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) Create(ctx context.Context, book model.Book, refs []model.AuthorRef) (*model.Book, error) {
	args := m.Called(ctx, book, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookService) AttachAuthors(ctx context.Context, id string, refs []model.AuthorRef) (*model.Book, error) {
	args := m.Called(ctx, id, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookService) Get(ctx context.Context, id string) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookService) Detail(ctx context.Context, id string) (*service.BookDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookDetail), args.Error(1)
}

func (m *MockBookService) List(ctx context.Context, f model.BookFilter) ([]model.Book, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
