//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"event-portal/internal/domain/event"
	"event-portal/internal/domain/registration"
)

type RegistrationBuilder struct {
	ID          int64
	UUID        string
	CreatedAt   time.Time
	FirstName   string
	LastName    string
	Email       *string
	PhoneNumber *string
}

func NewRegistrationBuilder() *RegistrationBuilder {
	email := "ada@example.com"
	return &RegistrationBuilder{
		ID:        100,
		UUID:      "r100",
		CreatedAt: time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     &email,
	}
}

func (b *RegistrationBuilder) With(mutate func(*RegistrationBuilder)) *RegistrationBuilder {
	mutate(b)
	return b
}

func (b *RegistrationBuilder) WithID(id int64) *RegistrationBuilder {
	b.ID = id
	b.UUID = fmt.Sprintf("r%d", id)
	return b
}

func (b *RegistrationBuilder) Build() event.Registration {
	return event.Registration{
		ID:          b.ID,
		UUID:        b.UUID,
		CreatedAt:   b.CreatedAt,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
	}
}

// BuildAdmin attaches the registration to the summary of ev.
func (b *RegistrationBuilder) BuildAdmin(ev event.Event) event.AdminRegistration {
	return event.AdminRegistration{
		Registration: b.Build(),
		Event:        ev.Summary(),
	}
}

// AdminRegistration is a shorthand for a registration with the given id on event eventID.
func AdminRegistration(id, eventID int64) event.AdminRegistration {
	ev := NewEventBuilder().WithID(eventID).Build()
	return NewRegistrationBuilder().WithID(id).BuildAdmin(ev)
}

func NewFormBuilder() *FormBuilder {
	return &FormBuilder{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

type FormBuilder struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

func (b *FormBuilder) With(mutate func(*FormBuilder)) *FormBuilder {
	mutate(b)
	return b
}

func (b *FormBuilder) Build() registration.Form {
	return registration.Form{
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Email:       b.Email,
		PhoneNumber: b.PhoneNumber,
	}
}
