package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(pool *pgxpool.Pool) api.Pinger { return pool },
		api.NewHealthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewMailHandler,
	),
	fx.Invoke(handler.NewRouter),
)
