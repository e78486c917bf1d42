package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/sc-task/internal/model"
	"github.com/dtroode/sc-task/internal/repository"
	repoMocks "github.com/dtroode/sc-task/internal/repository/mocks"
)

const (
	bookID   = "6f1c1a52-0d0f-4a53-9b2a-1d1f5c2a9e01"
	authorA1 = "0b8f0a43-67a4-4a0e-9a55-5b3f6a0d2c11"
	authorA2 = "2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e6f"
)

func TestAuthorResolver_Attach(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		refs        []model.AuthorRef
		setupMocks  func(mBooks *repoMocks.MockBookRepository, mAuthors *repoMocks.MockAuthorRepository)
		wantErr     error
		wantAuthors []string
	}{
		{
			name:        "empty refs is a no-op",
			refs:        nil,
			setupMocks:  func(*repoMocks.MockBookRepository, *repoMocks.MockAuthorRepository) {},
			wantAuthors: []string{},
		},
		{
			name: "existing author is linked without creating one",
			refs: []model.AuthorRef{model.ExistingAuthor{ID: authorA1}},
			setupMocks: func(mBooks *repoMocks.MockBookRepository, mAuthors *repoMocks.MockAuthorRepository) {
				mAuthors.On("FindByID", ctx, authorA1).Return(&model.Author{ID: authorA1}, nil)
				mBooks.On("LinkAuthor", ctx, bookID, authorA1).Return(nil)
			},
			wantAuthors: []string{authorA1},
		},
		{
			name: "unknown author id fails and links nothing",
			refs: []model.AuthorRef{model.ExistingAuthor{ID: authorA2}},
			setupMocks: func(mBooks *repoMocks.MockBookRepository, mAuthors *repoMocks.MockAuthorRepository) {
				mAuthors.On("FindByID", ctx, authorA2).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrAuthorNotFound,
		},
		{
			name:       "malformed author id is not found",
			refs:       []model.AuthorRef{model.ExistingAuthor{ID: "not-a-uuid"}},
			setupMocks: func(*repoMocks.MockBookRepository, *repoMocks.MockAuthorRepository) {},
			wantErr:    ErrAuthorNotFound,
		},
		{
			name: "new author is created exactly once and linked",
			refs: []model.AuthorRef{model.NewAuthor{Author: model.Author{Firstname: "Frank", Lastname: "Herbert"}}},
			setupMocks: func(mBooks *repoMocks.MockBookRepository, mAuthors *repoMocks.MockAuthorRepository) {
				mAuthors.On("Create", ctx, mock.MatchedBy(func(a *model.Author) bool {
					return a.ID != "" && a.Firstname == "Frank"
				})).Return(func(_ context.Context, a *model.Author) *model.Author {
					a.ID = authorA2
					return a
				}, nil).Once()
				mBooks.On("LinkAuthor", ctx, bookID, authorA2).Return(nil)
			},
			wantAuthors: []string{authorA2},
		},
		{
			name: "invalid new author fails before any write",
			refs: []model.AuthorRef{
				model.ExistingAuthor{ID: authorA1},
				model.NewAuthor{Author: model.Author{Firstname: "Frank"}},
			},
			setupMocks: func(*repoMocks.MockBookRepository, *repoMocks.MockAuthorRepository) {},
			wantErr:    &ValidationError{},
		},
		{
			name: "failure after a link keeps the earlier link",
			refs: []model.AuthorRef{
				model.ExistingAuthor{ID: authorA1},
				model.ExistingAuthor{ID: authorA2},
			},
			setupMocks: func(mBooks *repoMocks.MockBookRepository, mAuthors *repoMocks.MockAuthorRepository) {
				mAuthors.On("FindByID", ctx, authorA1).Return(&model.Author{ID: authorA1}, nil)
				mBooks.On("LinkAuthor", ctx, bookID, authorA1).Return(nil)
				mAuthors.On("FindByID", ctx, authorA2).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrAuthorNotFound,
		},
		{
			name: "link error is wrapped",
			refs: []model.AuthorRef{model.ExistingAuthor{ID: authorA1}},
			setupMocks: func(mBooks *repoMocks.MockBookRepository, mAuthors *repoMocks.MockAuthorRepository) {
				mAuthors.On("FindByID", ctx, authorA1).Return(&model.Author{ID: authorA1}, nil)
				mBooks.On("LinkAuthor", ctx, bookID, authorA1).Return(errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mBooks := new(repoMocks.MockBookRepository)
			mAuthors := new(repoMocks.MockAuthorRepository)
			tt.setupMocks(mBooks, mAuthors)

			r := NewAuthorResolver(mBooks, mAuthors)
			book := &model.Book{ID: bookID, AuthorIDs: []string{}}

			got, err := r.Attach(ctx, book, tt.refs)

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantAuthors, got.AuthorIDs)
			case *ValidationError:
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				mAuthors.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
				mAuthors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			default:
				if errors.Is(want, ErrAuthorNotFound) {
					assert.ErrorIs(t, err, ErrAuthorNotFound)
					assert.ErrorIs(t, err, ErrNotFound)
				} else {
					assert.ErrorContains(t, err, want.Error())
				}
			}

			mBooks.AssertExpectations(t)
			mAuthors.AssertExpectations(t)
		})
	}
}

func TestAuthorResolver_Attach_UnknownIDLeavesSetUnchanged(t *testing.T) {
	ctx := context.Background()
	mBooks := new(repoMocks.MockBookRepository)
	mAuthors := new(repoMocks.MockAuthorRepository)
	mAuthors.On("FindByID", ctx, authorA2).Return(nil, repository.ErrNotFound)

	book := &model.Book{ID: bookID, AuthorIDs: []string{authorA1}}
	_, err := NewAuthorResolver(mBooks, mAuthors).Attach(ctx, book, []model.AuthorRef{model.ExistingAuthor{ID: authorA2}})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{authorA1}, book.AuthorIDs)
	mBooks.AssertNotCalled(t, "LinkAuthor", mock.Anything, mock.Anything, mock.Anything)
}
