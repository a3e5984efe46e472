// Package forms drives the add/edit lifecycle of each entity form of
// the dashboard: draft state, client-side validation, create-vs-update
// selection and confirmation-gated deletes. Validation runs before any
// network call; the store is only mutated after a successful response.
package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"pubquiz-admin/internal/models"
)

// ErrInFlight is returned when a form already has a mutating request
// in flight. The original dashboard disables the submit control for
// the duration of a request; callers should treat this the same way.
var ErrInFlight = errors.New("a request for this form is already in flight")

// ConfirmFunc asks the user to confirm a destructive action. Returning
// false aborts the delete without any call being issued.
type ConfirmFunc func(prompt string) bool

// AlwaysConfirm is a ConfirmFunc that approves everything, useful for
// scripted use of the forms.
func AlwaysConfirm(string) bool { return true }

// Mode is the draft lifecycle state of a form: a blank add draft whose
// submit creates, or an edit of an existing record whose submit updates.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEditing
)

var validate = validator.New()

// validateStruct checks the required-field tags of a draft and converts
// the first failure into a ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &models.ValidationError{Field: fe.Field(), Message: validationMessage(fe)}
	}
	return &models.ValidationError{Message: err.Error()}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// submitGuard serializes mutating calls per form. Only one request may
// be in flight for a given entity form at a time.
type submitGuard struct {
	inFlight bool
}

func (g *submitGuard) begin() error {
	if g.inFlight {
		return ErrInFlight
	}
	g.inFlight = true
	return nil
}

func (g *submitGuard) end() {
	g.inFlight = false
}
