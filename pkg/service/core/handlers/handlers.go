package handlers

import (
	"github.com/caseboard/caseboard-backend/pkg/service/core"
)

type Handlers struct {
	SketchHandler         *SketchHandler
	TimelineHandler       *TimelineHandler
	ViewHandler           *ViewHandler
	SearchTemplateHandler *SearchTemplateHandler
	StoryHandler          *StoryHandler
	ExploreHandler        *ExploreHandler
	GraphHandler          *GraphHandler
	EventHandler          *EventHandler
	UploadHandler         *UploadHandler
	TaskHandler           *TaskHandler
}

func NewHandlers(s *core.Services) *Handlers {
	return &Handlers{
		SketchHandler:         NewSketchHandler(s.SketchService),
		TimelineHandler:       NewTimelineHandler(s.TimelineService),
		ViewHandler:           NewViewHandler(s.ViewService),
		SearchTemplateHandler: NewSearchTemplateHandler(s.SearchTemplateService),
		StoryHandler:          NewStoryHandler(s.StoryService),
		ExploreHandler:        NewExploreHandler(s.ExploreService),
		GraphHandler:          NewGraphHandler(s.GraphService),
		EventHandler:          NewEventHandler(s.EventService),
		UploadHandler:         NewUploadHandler(s.UploadService),
		TaskHandler:           NewTaskHandler(s.TaskService),
	}
}
