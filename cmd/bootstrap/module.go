package bootstrap

import (
	"event-portal/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	DataServiceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
