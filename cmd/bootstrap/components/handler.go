package components

import (
	"portfolio-api/internal/handler"
	"portfolio-api/internal/handler/api"
	"portfolio-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewTemplateHandler,
		api.NewReservationHandler,
		api.NewPageHandler,
		middleware.NewAuthMiddleware,
		middleware.NewPageGate,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	template *api.TemplateHandler,
	reservation *api.ReservationHandler,
	page *api.PageHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Template:     template,
		Reservation:  reservation,
		Page:         page,
	}
}
