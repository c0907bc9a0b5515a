package dataservice

import (
	"time"

	"event-portal/internal/domain/event"
	"event-portal/internal/domain/registration"
	"event-portal/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// Wire types use the data service's snake_case keys. Field names match the domain
// types so copier can map them one to one.

type registrationDTO struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	CreatedAt   time.Time `json:"created_at"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
}

type eventDTO struct {
	ID             int64             `json:"id"`
	UUID           string            `json:"uuid"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Start          time.Time         `json:"start_date"`
	End            time.Time         `json:"end_date"`
	AvailableSlots int               `json:"available_slots"`
	Registrations  []registrationDTO `json:"registrations"`
}

type eventSummaryDTO struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Start          time.Time `json:"start_date"`
	End            time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
}

type adminRegistrationDTO struct {
	registrationDTO
	Event eventSummaryDTO `json:"event"`
}

type eventWriteDTO struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Start          time.Time `json:"start_date"`
	End            time.Time `json:"end_date"`
	AvailableSlots int       `json:"available_slots"`
}

// registerRequest is the one payload the service expects in camelCase.
type registerRequest struct {
	EventUUID   string  `json:"eventUuid"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e errorResponse) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

var copyOpts = copier.Option{DeepCopy: true}

func toEvents(in []eventDTO) ([]event.Event, error) {
	out := make([]event.Event, 0, len(in))
	if err := copier.CopyWithOption(&out, &in, copyOpts); err != nil {
		return nil, errs.Wrap(err, "convert events")
	}
	for i := range out {
		if out[i].Registrations == nil {
			out[i].Registrations = []event.Registration{}
		}
	}
	return out, nil
}

func toEvent(in eventDTO) (*event.Event, error) {
	var out event.Event
	if err := copier.CopyWithOption(&out, &in, copyOpts); err != nil {
		return nil, errs.Wrap(err, "convert event")
	}
	return &out, nil
}

func toAdminRegistrations(in []adminRegistrationDTO) ([]event.AdminRegistration, error) {
	out := make([]event.AdminRegistration, len(in))
	for i := range in {
		if err := copier.CopyWithOption(&out[i].Registration, &in[i].registrationDTO, copyOpts); err != nil {
			return nil, errs.Wrap(err, "convert registration")
		}
		if err := copier.CopyWithOption(&out[i].Event, &in[i].Event, copyOpts); err != nil {
			return nil, errs.Wrap(err, "convert registration event")
		}
	}
	return out, nil
}

func fromDraft(d event.Draft) (eventWriteDTO, error) {
	var out eventWriteDTO
	if err := copier.Copy(&out, &d); err != nil {
		return eventWriteDTO{}, errs.Wrap(err, "convert draft")
	}
	return out, nil
}

func fromSubmission(s registration.Submission) (registerRequest, error) {
	var out registerRequest
	if err := copier.Copy(&out, &s); err != nil {
		return registerRequest{}, errs.Wrap(err, "convert submission")
	}
	return out, nil
}
