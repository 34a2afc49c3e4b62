package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type ExploreEndpoints struct {
	Explore     http.HandlerFunc
	Aggregate   http.HandlerFunc
	BuildQuery  http.HandlerFunc
	CountEvents http.HandlerFunc
	GraphSearch http.HandlerFunc
}

func NewExploreEndpoints(log zerolog.Logger, h *handlers.ExploreHandler, g *handlers.GraphHandler) *ExploreEndpoints {
	return &ExploreEndpoints{
		Explore:     transport.For(h.Explore).RequestFromJSON().Build(log),
		Aggregate:   transport.For(h.Aggregate).RequestFromJSON().Build(log),
		BuildQuery:  transport.For(h.BuildQuery).RequestFromJSON().Build(log),
		CountEvents: transport.For(h.CountEvents).Build(log),
		GraphSearch: transport.For(g.Search).RequestFromJSON().Build(log),
	}
}

func NewExploreRoutes(endpoints *ExploreEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/api/v1/sketches/{id}/explore/", endpoints.Explore)
			r.Post("/api/v1/sketches/{id}/aggregation/", endpoints.Aggregate)
			r.Post("/api/v1/sketches/{id}/query/", endpoints.BuildQuery)
			r.Get("/api/v1/sketches/{id}/count/", endpoints.CountEvents)
			r.Post("/api/v1/sketches/{id}/graph/", endpoints.GraphSearch)
		})
	}
}
