package model

// Book is a catalog record for a single publication.
// AuthorIDs is the book's side of the many-to-many association with authors.
type Book struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Year      int16    `json:"year"`
	Genre     string   `json:"genre"`
	Pages     int      `json:"pages"`
	Publisher string   `json:"publisher"`
	File      *string  `json:"file"`
	AuthorIDs []string `json:"authors"`
}

// HasAuthor reports whether id is in the book's author set.
func (b *Book) HasAuthor(id string) bool {
	for _, a := range b.AuthorIDs {
		if a == id {
			return true
		}
	}
	return false
}

// AddAuthor adds id to the author set unless it is already there.
func (b *Book) AddAuthor(id string) {
	if !b.HasAuthor(id) {
		b.AuthorIDs = append(b.AuthorIDs, id)
	}
}
