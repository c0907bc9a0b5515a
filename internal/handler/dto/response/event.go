package response

import (
	"time"

	"event-portal/internal/domain/event"

	"github.com/jinzhu/copier"
)

type RegistrationResponse struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	CreatedAt   time.Time `json:"created_at"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
}

type EventResponse struct {
	ID             int64                  `json:"id"`
	UUID           string                 `json:"uuid"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Start          time.Time              `json:"start_date"`
	End            time.Time              `json:"end_date"`
	AvailableSlots int                    `json:"available_slots"`
	Registrations  []RegistrationResponse `json:"registrations"`
}

type DraftResponse struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Start          time.Time `json:"start_date"`
	End            time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromEvent(e event.Event) EventResponse {
	var out EventResponse
	_ = copier.Copy(&out, &e)
	if out.Registrations == nil {
		out.Registrations = []RegistrationResponse{}
	}
	return out
}

func FromEvents(events []event.Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i, e := range events {
		out[i] = FromEvent(e)
	}
	return out
}

func FromRegistrations(regs []event.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	_ = copier.Copy(&out, &regs)
	if out == nil {
		out = []RegistrationResponse{}
	}
	return out
}

func FromDraft(d event.Draft) DraftResponse {
	var out DraftResponse
	_ = copier.Copy(&out, &d)
	return out
}
