package service

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dtroode/sc-task/internal/model"
)

func validateBook(b *model.Book) error {
	return asValidationError(validation.ValidateStruct(b,
		validation.Field(&b.Title, validation.Required.Error("title is required"), validation.Length(1, 255)),
		validation.Field(&b.Year, validation.Min(int16(-9999)), validation.Max(int16(9999))),
		validation.Field(&b.Pages, validation.Min(0).Error("pages must not be negative")),
		validation.Field(&b.Genre, validation.Length(0, 100)),
		validation.Field(&b.Publisher, validation.Length(0, 255)),
	))
}

func validateAuthor(a *model.Author) error {
	return asValidationError(validation.ValidateStruct(a,
		validation.Field(&a.Firstname, validation.Required.Error("firstname is required"), validation.Length(1, 100)),
		validation.Field(&a.Lastname, validation.Required.Error("lastname is required"), validation.Length(1, 100)),
		validation.Field(&a.Middlename, validation.Length(0, 100)),
		validation.Field(&a.DeathDate, validation.By(deathAfterBirth(a.BirthDate))),
	))
}

func deathAfterBirth(birth *model.Date) validation.RuleFunc {
	return func(value any) error {
		death, _ := value.(*model.Date)
		if birth == nil || death == nil {
			return nil
		}
		if death.Before(birth.Time) {
			return errors.New("must not be before birth_date")
		}
		return nil
	}
}

// validateRefs checks the payload of every NewAuthor ref before anything is written.
func validateRefs(refs []model.AuthorRef) error {
	errs := validation.Errors{}
	for i, ref := range refs {
		nr, ok := ref.(model.NewAuthor)
		if !ok {
			continue
		}
		err := validateAuthor(&nr.Author)
		var ve *ValidationError
		if errors.As(err, &ve) {
			errs[fmt.Sprintf("authors[%d]", i)] = ve.Errs
		} else if err != nil {
			return err
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errs: errs}
}
