package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type SketchEndpoints struct {
	ListSketches    http.HandlerFunc
	CreateSketch    http.HandlerFunc
	GetSketch       http.HandlerFunc
	AttachTimelines http.HandlerFunc
}

func NewSketchEndpoints(log zerolog.Logger, h *handlers.SketchHandler) *SketchEndpoints {
	return &SketchEndpoints{
		ListSketches:    transport.For(h.ListSketches).Build(log),
		CreateSketch:    transport.For(h.CreateSketch).RequestFromJSON().Build(log),
		GetSketch:       transport.For(h.GetSketch).Build(log),
		AttachTimelines: transport.For(h.AttachTimelines).RequestFromJSON().Build(log),
	}
}

func NewSketchRoutes(endpoints *SketchEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/api/v1/sketches/", endpoints.ListSketches)
			r.Post("/api/v1/sketches/", endpoints.CreateSketch)
			r.Get("/api/v1/sketches/{id}/", endpoints.GetSketch)
			r.Post("/api/v1/sketches/{id}/", endpoints.AttachTimelines)
		})
	}
}
