package request

import "event-portal/internal/domain/registration"

// RegisterRequest carries the raw form; validation happens in the registration package
// so field and group errors can be reported together.
type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r RegisterRequest) ToForm() registration.Form {
	return registration.Form{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}
