package session

import (
	"event-portal/internal/domain/registration"
	"event-portal/internal/pkg/errs"
)

const (
	MsgNotAuthenticated  = "Not authenticated."
	MsgIncorrectPassword = "Incorrect password."
	MsgAlreadyRegistered = "This email or phone number is already registered for this event."
	MsgGeneric           = "Something went wrong. Please try again."
	MsgInFlight          = "Operation already in progress."
	MsgInvalidForm       = "Please correct the highlighted fields."

	MsgEventCreated        = "Event created."
	MsgEventUpdated        = "Event updated."
	MsgEventDeleted        = "Event deleted."
	MsgRegistrationDeleted = "Registration deleted."
)

type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback is the last user-visible outcome of an operation.
type Feedback struct {
	Kind    FeedbackKind `json:"kind"`
	Message string       `json:"message"`
}

func success(message string) *Feedback {
	return &Feedback{Kind: FeedbackSuccess, Message: message}
}

// FeedbackFor maps an operation error to the message shown to the user.
func FeedbackFor(err error) Feedback {
	return Feedback{Kind: FeedbackError, Message: messageFor(err)}
}

func messageFor(err error) string {
	var formErr *registration.ValidationError
	switch {
	case errs.Is(err, errs.ErrInFlight):
		return MsgInFlight
	case errs.As(err, &formErr):
		return MsgInvalidForm
	case errs.Is(err, errs.ErrValidation):
		return errs.Cause(err).Error()
	case errs.Is(err, errs.ErrUnauthenticated):
		return MsgNotAuthenticated
	case errs.Is(err, errs.ErrConflict):
		return MsgAlreadyRegistered
	default:
		return MsgGeneric
	}
}

// LoginFeedback differs from FeedbackFor only in how a 401 is worded.
func LoginFeedback(err error) Feedback {
	switch {
	case errs.Is(err, errs.ErrUnauthenticated):
		return Feedback{Kind: FeedbackError, Message: MsgIncorrectPassword}
	case errs.Is(err, errs.ErrValidation), errs.Is(err, errs.ErrInFlight):
		return FeedbackFor(err)
	default:
		return Feedback{Kind: FeedbackError, Message: MsgGeneric}
	}
}
