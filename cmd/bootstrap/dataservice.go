package bootstrap

import (
	"event-portal/internal/infra/dataservice"
	"event-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var DataServiceModule = fx.Module("dataservice",
	fx.Provide(
		fx.Annotate(
			dataservice.NewFactory,
			fx.As(new(shared.DataServiceFactory)),
		),
	),
)
