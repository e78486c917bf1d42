package model

// Author is a person attributable to one or more books.
type Author struct {
	ID          string  `json:"id"`
	Firstname   string  `json:"firstname"`
	Lastname    string  `json:"lastname"`
	Middlename  *string `json:"middlename,omitempty"`
	BirthDate   *Date   `json:"birth_date,omitempty"`
	DeathDate   *Date   `json:"death_date,omitempty"`
	Description *string `json:"description,omitempty"`
}
