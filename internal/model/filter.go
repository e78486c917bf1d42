package model

// BookFilter lists the optional criteria of a catalog query. A nil field (or
// nil Authors) means the criterion is absent.
type BookFilter struct {
	Year      *int16
	Genre     *string
	Publisher *string
	Title     *string
	Authors   []string
}

// Empty reports whether no criterion is present.
func (f BookFilter) Empty() bool {
	return f.Year == nil && f.Genre == nil && f.Publisher == nil && f.Title == nil && f.Authors == nil
}
