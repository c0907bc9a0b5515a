// Package registration validates the visitor registration form.
package registration

import (
	"reflect"
	"strings"

	"event-portal/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// ContactGroup is the form-group key carrying the email-or-phone error.
const ContactGroup = "contact"

const (
	MsgRequired        = "This field is required."
	MsgInvalidEmail    = "Enter a valid email address."
	MsgContactRequired = "Provide an email address or a phone number."
)

var ErrInvalidForm = errs.New("registration form is invalid")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

type Form struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
}

// Errors separates field-level problems from form-group ones.
type Errors struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Group  map[string]string   `json:"group,omitempty"`
}

func (e Errors) Valid() bool {
	return len(e.Fields) == 0 && len(e.Group) == 0
}

// Err is nil for a valid form, otherwise an error marked errs.ErrValidation.
func (e Errors) Err() error {
	if e.Valid() {
		return nil
	}
	return &ValidationError{Errors: e}
}

// ValidationError carries the per-field and per-group messages to the caller.
type ValidationError struct {
	Errors Errors
}

func (e *ValidationError) Error() string {
	return ErrInvalidForm.Error()
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrValidation || target == ErrInvalidForm
}

func (f Form) trimmed() Form {
	return Form{
		FirstName:   strings.TrimSpace(f.FirstName),
		LastName:    strings.TrimSpace(f.LastName),
		Email:       strings.TrimSpace(f.Email),
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
	}
}

// Validate applies the field rules and the email-or-phone group rule independently.
func Validate(f Form) Errors {
	t := f.trimmed()
	result := Errors{}

	if err := validate.Struct(t); err != nil {
		var fieldErrs validator.ValidationErrors
		if errs.As(err, &fieldErrs) {
			result.Fields = make(map[string][]string, len(fieldErrs))
			for _, fe := range fieldErrs {
				result.Fields[fe.Field()] = append(result.Fields[fe.Field()], messageFor(fe.Tag()))
			}
		}
	}

	if t.Email == "" && t.PhoneNumber == "" {
		result.Group = map[string]string{ContactGroup: MsgContactRequired}
	}

	return result
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	default:
		return "Invalid value."
	}
}

// Submission is the payload sent to the data service for a registration.
type Submission struct {
	EventUUID   string
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber *string
}

// Submission trims the form and leaves blank contacts unset.
func (f Form) Submission(eventUUID string) Submission {
	t := f.trimmed()
	s := Submission{
		EventUUID: eventUUID,
		FirstName: t.FirstName,
		LastName:  t.LastName,
	}
	if t.Email != "" {
		s.Email = &t.Email
	}
	if t.PhoneNumber != "" {
		s.PhoneNumber = &t.PhoneNumber
	}
	return s
}
