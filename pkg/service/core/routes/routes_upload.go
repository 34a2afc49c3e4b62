package routes

import (
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/service/core/handlers"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
)

type UploadEndpoints struct {
	Upload    http.HandlerFunc
	ListTasks http.HandlerFunc
}

func NewUploadEndpoints(log zerolog.Logger, u *handlers.UploadHandler, t *handlers.TaskHandler) *UploadEndpoints {
	return &UploadEndpoints{
		Upload:    transport.For(u.Upload).Build(log),
		ListTasks: transport.For(t.ListTasks).Build(log),
	}
}

func NewUploadRoutes(endpoints *UploadEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/api/v1/upload/", endpoints.Upload)
			r.Get("/api/v1/tasks/", endpoints.ListTasks)
		})
	}
}
