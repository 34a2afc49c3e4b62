package core

import (
	"github.com/caseboard/caseboard-backend/pkg/config"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core/api"
	"github.com/caseboard/caseboard-backend/pkg/service/core/storage"
)

type Services struct {
	SketchService         service.SketchService
	TimelineService       service.TimelineService
	ViewService           service.ViewService
	SearchTemplateService service.SearchTemplateService
	StoryService          service.StoryService
	ExploreService        service.ExploreService
	GraphService          service.GraphService
	EventService          service.EventService
	UploadService         service.UploadService
	TaskService           service.TaskService
}

func NewServices(
	cfg config.Config,
	stores *storage.Stores,
	clients *api.Clients,
) *Services {
	return &Services{
		SketchService: NewSketchService(
			stores.SketchStorage,
			stores.TimelineStorage,
			stores.SearchIndexStorage,
			stores.ViewStorage,
			stores.SearchTemplateStorage,
		),
		TimelineService: NewTimelineService(
			stores.SketchStorage,
			stores.TimelineStorage,
		),
		ViewService: NewViewService(
			stores.SketchStorage,
			stores.ViewStorage,
			stores.SearchTemplateStorage,
		),
		SearchTemplateService: NewSearchTemplateService(
			stores.SearchTemplateStorage,
		),
		StoryService: NewStoryService(
			stores.SketchStorage,
			stores.StoryStorage,
		),
		ExploreService: NewExploreService(
			stores.SketchStorage,
			stores.TimelineStorage,
			stores.ViewStorage,
			clients.SearchAPI,
		),
		GraphService: NewGraphService(
			stores.SketchStorage,
			clients.GraphAPI,
		),
		EventService: NewEventService(
			stores.SketchStorage,
			stores.TimelineStorage,
			stores.SearchIndexStorage,
			stores.EventStorage,
			clients.SearchAPI,
		),
		UploadService: NewUploadService(
			cfg.Upload,
			stores.SketchStorage,
			stores.TimelineStorage,
			stores.SearchIndexStorage,
			clients.TaskQueueAPI,
		),
		TaskService: NewTaskService(
			cfg.Upload,
			stores.SearchIndexStorage,
			clients.TaskQueueAPI,
		),
	}
}
