package components

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewHourlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		booking.NewDefaultRefundPolicy,
		fx.As(new(booking.RefundPolicy)),
	),
	func(clock clock.Clock, calc booking.PriceCalculator, refunds booking.RefundPolicy) *booking.Services {
		return &booking.Services{
			Clock:           clock,
			PriceCalculator: calc,
			RefundPolicy:    refunds,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewRoomUseCase,
		commands.NewMailUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)
