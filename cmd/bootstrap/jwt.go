package bootstrap

import (
	"event-portal/internal/pkg/config"
	"event-portal/internal/pkg/jwt"
	"event-portal/internal/usecase/session"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(session.TokenService)),
		),
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	if cfg.Session.TTL <= 0 {
		panic("invalid SESSION_TTL: must be positive")
	}
	return jwt.NewService(cfg.Session.Secret, cfg.Session.TTL)
}
