package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type SearchTemplateEndpoints struct {
	ListSearchTemplates http.HandlerFunc
	GetSearchTemplate   http.HandlerFunc
}

func NewSearchTemplateEndpoints(log zerolog.Logger, h *handlers.SearchTemplateHandler) *SearchTemplateEndpoints {
	return &SearchTemplateEndpoints{
		ListSearchTemplates: transport.For(h.ListSearchTemplates).Build(log),
		GetSearchTemplate:   transport.For(h.GetSearchTemplate).Build(log),
	}
}

func NewSearchTemplateRoutes(endpoints *SearchTemplateEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/api/v1/searchtemplates/", endpoints.ListSearchTemplates)
			r.Get("/api/v1/searchtemplates/{id}/", endpoints.GetSearchTemplate)
		})
	}
}
