package service

import "github.com/dtroode/sc-task/internal/model"

// FilterBooks keeps the books that satisfy every present criterion of f,
// preserving input order. String and number comparisons are exact and case
// sensitive; Authors keeps books whose author set contains all listed IDs.
// The result is never nil.
func FilterBooks(books []model.Book, f model.BookFilter) []model.Book {
	out := make([]model.Book, 0, len(books))
	for i := range books {
		if matchesFilter(&books[i], f) {
			out = append(out, books[i])
		}
	}
	return out
}

func matchesFilter(b *model.Book, f model.BookFilter) bool {
	if f.Year != nil && b.Year != *f.Year {
		return false
	}
	if f.Genre != nil && b.Genre != *f.Genre {
		return false
	}
	if f.Publisher != nil && b.Publisher != *f.Publisher {
		return false
	}
	if f.Title != nil && b.Title != *f.Title {
		return false
	}
	for _, id := range f.Authors {
		if !b.HasAuthor(id) {
			return false
		}
	}
	return true
}
