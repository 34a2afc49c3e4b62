package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type ViewEndpoints struct {
	ListViews  http.HandlerFunc
	CreateView http.HandlerFunc
	GetView    http.HandlerFunc
	UpdateView http.HandlerFunc
	DeleteView http.HandlerFunc
}

func NewViewEndpoints(log zerolog.Logger, h *handlers.ViewHandler) *ViewEndpoints {
	return &ViewEndpoints{
		ListViews:  transport.For(h.ListViews).Build(log),
		CreateView: transport.For(h.CreateView).RequestFromJSON().Build(log),
		GetView:    transport.For(h.GetView).Build(log),
		UpdateView: transport.For(h.UpdateView).RequestFromJSON().Build(log),
		DeleteView: transport.For(h.DeleteView).Build(log),
	}
}

func NewViewRoutes(endpoints *ViewEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/api/v1/sketches/{id}/views/", endpoints.ListViews)
			r.Post("/api/v1/sketches/{id}/views/", endpoints.CreateView)
			r.Get("/api/v1/sketches/{id}/views/{viewID}/", endpoints.GetView)
			r.Post("/api/v1/sketches/{id}/views/{viewID}/", endpoints.UpdateView)
			r.Delete("/api/v1/sketches/{id}/views/{viewID}/", endpoints.DeleteView)
		})
	}
}
