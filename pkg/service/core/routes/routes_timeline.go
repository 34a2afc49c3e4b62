package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type TimelineEndpoints struct {
	ListTimelines  http.HandlerFunc
	GetTimeline    http.HandlerFunc
	DeleteTimeline http.HandlerFunc
}

func NewTimelineEndpoints(log zerolog.Logger, h *handlers.TimelineHandler) *TimelineEndpoints {
	return &TimelineEndpoints{
		ListTimelines:  transport.For(h.ListTimelines).Build(log),
		GetTimeline:    transport.For(h.GetTimeline).Build(log),
		DeleteTimeline: transport.For(h.DeleteTimeline).Build(log),
	}
}

func NewTimelineRoutes(endpoints *TimelineEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/api/v1/sketches/{id}/timelines/", endpoints.ListTimelines)
			r.Get("/api/v1/sketches/{id}/timelines/{timelineID}/", endpoints.GetTimeline)
			r.Delete("/api/v1/sketches/{id}/timelines/{timelineID}/", endpoints.DeleteTimeline)
		})
	}
}
