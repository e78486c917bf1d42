package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/sc-task/internal/model"
)

func ptr[T any](v T) *T { return &v }

func catalog() []model.Book {
	return []model.Book{
		{ID: "b1", Title: "Dune", Year: 1965, Genre: "scifi", Publisher: "Chilton", AuthorIDs: []string{authorA1}},
		{ID: "b2", Title: "Dune Messiah", Year: 1969, Genre: "scifi", Publisher: "Putnam", AuthorIDs: []string{authorA1}},
		{ID: "b3", Title: "The Hobbit", Year: 1937, Genre: "fantasy", Publisher: "Allen & Unwin", AuthorIDs: []string{authorA2}},
		{ID: "b4", Title: "Good Omens", Year: 1990, Genre: "fantasy", Publisher: "Gollancz", AuthorIDs: []string{authorA1, authorA2}},
		{ID: "b5", Title: "Untitled", Year: 1965, Genre: "scifi", Publisher: "Chilton", AuthorIDs: []string{}},
	}
}

func ids(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterBooks(t *testing.T) {
	tests := []struct {
		name   string
		filter model.BookFilter
		want   []string
	}{
		{
			name:   "no filter returns everything in store order",
			filter: model.BookFilter{},
			want:   []string{"b1", "b2", "b3", "b4", "b5"},
		},
		{
			name:   "genre",
			filter: model.BookFilter{Genre: ptr("fantasy")},
			want:   []string{"b3", "b4"},
		},
		{
			name:   "genre is case sensitive",
			filter: model.BookFilter{Genre: ptr("SciFi")},
			want:   []string{},
		},
		{
			name:   "year and publisher combine with AND",
			filter: model.BookFilter{Year: ptr(int16(1965)), Publisher: ptr("Chilton")},
			want:   []string{"b1", "b5"},
		},
		{
			name:   "title is exact, not a prefix",
			filter: model.BookFilter{Title: ptr("Dune")},
			want:   []string{"b1"},
		},
		{
			name:   "authors requires a superset",
			filter: model.BookFilter{Authors: []string{authorA1, authorA2}},
			want:   []string{"b4"},
		},
		{
			name:   "single author",
			filter: model.BookFilter{Authors: []string{authorA2}},
			want:   []string{"b3", "b4"},
		},
		{
			name:   "authors and genre",
			filter: model.BookFilter{Authors: []string{authorA1}, Genre: ptr("scifi")},
			want:   []string{"b1", "b2"},
		},
		{
			name:   "no match is empty, not nil",
			filter: model.BookFilter{Year: ptr(int16(2001))},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books := catalog()
			got := FilterBooks(books, tt.filter)

			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
			for _, b := range got {
				assert.True(t, matchesFilter(&b, tt.filter))
			}
			excluded := len(books) - len(got)
			for _, b := range books {
				if !matchesFilter(&b, tt.filter) {
					excluded--
				}
			}
			assert.Zero(t, excluded)
		})
	}
}

func TestFilterBooks_EmptyCollection(t *testing.T) {
	got := FilterBooks(nil, model.BookFilter{Genre: ptr("scifi")})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
