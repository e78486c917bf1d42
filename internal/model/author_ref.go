package model

// AuthorRef points a book at an author: either an existing record or the
// fields of an author that does not exist yet.
// The concrete types are ExistingAuthor and NewAuthor.
type AuthorRef interface {
	authorRef()
}

// ExistingAuthor references a persisted author by ID.
type ExistingAuthor struct {
	ID string
}

// NewAuthor carries the fields of an author to create while attaching.
type NewAuthor struct {
	Author Author
}

func (ExistingAuthor) authorRef() {}
func (NewAuthor) authorRef()      {}
