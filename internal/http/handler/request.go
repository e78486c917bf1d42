package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dtroode/sc-task/internal/model"
)

// authorRequest is an author payload. With a non-empty ID it references an
// existing author and every other field is ignored.
type authorRequest struct {
	ID          string      `json:"id,omitempty"`
	Firstname   string      `json:"firstname"`
	Lastname    string      `json:"lastname"`
	Middlename  *string     `json:"middlename,omitempty"`
	BirthDate   *model.Date `json:"birth_date,omitempty"`
	DeathDate   *model.Date `json:"death_date,omitempty"`
	Description *string     `json:"description,omitempty"`
}

func (r authorRequest) author() model.Author {
	return model.Author{
		Firstname:   r.Firstname,
		Lastname:    r.Lastname,
		Middlename:  r.Middlename,
		BirthDate:   r.BirthDate,
		DeathDate:   r.DeathDate,
		Description: r.Description,
	}
}

func (r authorRequest) ref() model.AuthorRef {
	if r.ID != "" {
		return model.ExistingAuthor{ID: r.ID}
	}
	return model.NewAuthor{Author: r.author()}
}

func authorRefs(reqs []authorRequest) []model.AuthorRef {
	refs := make([]model.AuthorRef, 0, len(reqs))
	for _, r := range reqs {
		refs = append(refs, r.ref())
	}
	return refs
}

type bookRequest struct {
	Title     string          `json:"title"`
	Year      int16           `json:"year"`
	Genre     string          `json:"genre"`
	Pages     int             `json:"pages"`
	Publisher string          `json:"publisher"`
	Authors   []authorRequest `json:"authors"`
}

func (r bookRequest) book() model.Book {
	return model.Book{
		Title:     r.Title,
		Year:      r.Year,
		Genre:     r.Genre,
		Pages:     r.Pages,
		Publisher: r.Publisher,
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// parseBookFilter reads year, genre, publisher, title and the repeatable
// author parameter. A parameter that is absent leaves its criterion unset.
func parseBookFilter(c *fiber.Ctx) (model.BookFilter, error) {
	args := c.Context().QueryArgs()
	var f model.BookFilter

	if args.Has("year") {
		y, err := strconv.ParseInt(string(args.Peek("year")), 10, 16)
		if err != nil {
			return f, err
		}
		year := int16(y)
		f.Year = &year
	}
	for key, dst := range map[string]**string{
		"genre":     &f.Genre,
		"publisher": &f.Publisher,
		"title":     &f.Title,
	} {
		if args.Has(key) {
			v := string(args.Peek(key))
			*dst = &v
		}
	}
	for _, a := range args.PeekMulti("author") {
		f.Authors = append(f.Authors, string(a))
	}
	return f, nil
}
