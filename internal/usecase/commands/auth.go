package commands

import (
	"context"
	"strings"

	"event-portal/internal/pkg/errs"
	"event-portal/internal/usecase/shared"
)

var ErrPasswordRequired = errs.New("Please enter a password.")

type AuthCommands struct {
	ds shared.DataService
}

func NewAuthCommands(ds shared.DataService) *AuthCommands {
	return &AuthCommands{ds: ds}
}

// Login asks the data service to open an admin session. The resulting cookie stays
// in the client's jar.
func (a *AuthCommands) Login(ctx context.Context, password string) error {
	if strings.TrimSpace(password) == "" {
		return errs.Mark(ErrPasswordRequired, errs.ErrValidation)
	}
	return errs.Wrap(a.ds.LoginAdmin(ctx, password), "admin login")
}
