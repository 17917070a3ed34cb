package components

import (
	"portfolio-api/internal/pkg/clock"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/usecase/commands"
	"portfolio-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTemplateCommands,
		commands.NewReservationCommands,
		commands.NewPageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTemplateQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewPageQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
