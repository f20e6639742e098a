package bootstrap

import (
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule reads .env and the environment once; tests provide config.Config directly instead.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	NotifyModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
