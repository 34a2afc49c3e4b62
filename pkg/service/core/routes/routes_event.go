package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type EventEndpoints struct {
	GetEvent http.HandlerFunc
	Annotate http.HandlerFunc
}

func NewEventEndpoints(log zerolog.Logger, h *handlers.EventHandler) *EventEndpoints {
	return &EventEndpoints{
		GetEvent: transport.For(h.GetEvent).Build(log),
		Annotate: transport.For(h.Annotate).RequestFromJSON().Build(log),
	}
}

func NewEventRoutes(endpoints *EventEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/api/v1/sketches/{id}/event/", endpoints.GetEvent)
			r.Post("/api/v1/sketches/{id}/event/annotate/", endpoints.Annotate)
		})
	}
}
