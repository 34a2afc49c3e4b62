package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type StoryEndpoints struct {
	ListStories http.HandlerFunc
	CreateStory http.HandlerFunc
	GetStory    http.HandlerFunc
	UpdateStory http.HandlerFunc
}

func NewStoryEndpoints(log zerolog.Logger, h *handlers.StoryHandler) *StoryEndpoints {
	return &StoryEndpoints{
		ListStories: transport.For(h.ListStories).Build(log),
		CreateStory: transport.For(h.CreateStory).Build(log),
		GetStory:    transport.For(h.GetStory).Build(log),
		UpdateStory: transport.For(h.UpdateStory).RequestFromJSON().Build(log),
	}
}

func NewStoryRoutes(endpoints *StoryEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/api/v1/sketches/{id}/stories/", endpoints.ListStories)
			r.Post("/api/v1/sketches/{id}/stories/", endpoints.CreateStory)
			r.Get("/api/v1/sketches/{id}/stories/{storyID}/", endpoints.GetStory)
			r.Post("/api/v1/sketches/{id}/stories/{storyID}/", endpoints.UpdateStory)
		})
	}
}
