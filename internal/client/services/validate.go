package services

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/moodkeeper/internal/client/models"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldMessages maps a struct field to the message shown when it fails
// validation.
var fieldMessages = map[string]string{
	"Email":    "Please enter an email.",
	"Username": "Please enter a username.",
	"Password": "Password must be at least 6 characters.",
	"Date":     "Please choose a date.",
	"Mood":     "Please select a mood (1–5).",
}

// registerInput is the validated shape of a registration form.
type registerInput struct {
	Email    string `validate:"required"`
	Username string `validate:"required"`
	Password []byte `validate:"min=6"`
}

// loginInput is the validated shape of a login form.
type loginInput struct {
	Email    string `validate:"required"`
	Password []byte `validate:"min=6"`
}

// CheckInForm is the raw content of the check-in form. ID is empty when a
// new entry is being created.
type CheckInForm struct {
	ID      string
	Date    string `validate:"required,datetime=2006-01-02"`
	Mood    int    `validate:"min=1,max=5"`
	Stress  int
	Sleep   int
	Journal string
}

// Entry validates the form and turns it into an entry ready for Upsert.
// Date and mood are mandatory; stress and sleep are clamped rather than
// rejected and the journal is trimmed.
func (f CheckInForm) Entry() (models.CheckInEntry, error) {
	f.Date = strings.TrimSpace(f.Date)
	if err := validateStruct(f); err != nil {
		return models.CheckInEntry{}, err
	}
	e := models.CheckInEntry{
		ID:      f.ID,
		Date:    f.Date,
		Mood:    f.Mood,
		Stress:  f.Stress,
		Sleep:   f.Sleep,
		Journal: strings.TrimSpace(f.Journal),
	}
	return e.Clamped(), nil
}

// validateStruct runs the validator and converts its field errors into a
// *common.ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &common.ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		ve.Fields[fe.Field()] = msg
	}
	return ve
}
