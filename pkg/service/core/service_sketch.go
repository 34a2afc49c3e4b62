package core

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.SketchService = &sketchService{}

type sketchService struct {
	sketchStorage         service.SketchStorage
	timelineStorage       service.TimelineStorage
	searchIndexStorage    service.SearchIndexStorage
	viewStorage           service.ViewStorage
	searchTemplateStorage service.SearchTemplateStorage
}

func (s *sketchService) ListSketches(ctx context.Context, user *service.User, page, size int) (*service.Envelope[service.SketchListMeta, *service.Sketch], error) {
	const op errs.Op = "sketchService.ListSketches"

	offset := (page - 1) * size

	sketches, total, err := s.sketchStorage.ListSketches(ctx, user.ID, size, offset)
	if err != nil {
		return nil, errs.E(op, err)
	}

	meta := service.SketchListMeta{
		Offset: offset,
		Limit:  size,
	}
	if int64(offset+size) < total {
		next := page + 1
		meta.Next = &next
	}
	if page > 1 {
		previous := page - 1
		meta.Previous = &previous
	}

	return service.NewEnvelope(meta, sketches), nil
}

func (s *sketchService) CreateSketch(ctx context.Context, user *service.User, newSketch *service.NewSketch) (*service.Created[service.EmptyMeta, *service.Sketch], error) {
	const op errs.Op = "sketchService.CreateSketch"

	sketch, err := s.sketchStorage.CreateSketch(ctx, user, newSketch)
	if err != nil {
		return nil, errs.E(op, errs.UserName(user.Username), err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.Sketch{sketch}), nil
}

func (s *sketchService) GetSketch(ctx context.Context, user *service.User, id uuid.UUID) (*service.Envelope[service.SketchMeta, *service.Sketch], error) {
	const op errs.Op = "sketchService.GetSketch"

	sketch, err := s.sketchStorage.GetSketch(ctx, user.ID, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	views, err := s.viewStorage.ListNamedViews(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	templates, err := s.searchTemplateStorage.ListSearchTemplates(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	meta := service.SketchMeta{
		Views:           make([]service.NamedRef, 0, len(views)),
		SearchTemplates: make([]service.NamedRef, 0, len(templates)),
	}
	for _, view := range views {
		meta.Views = append(meta.Views, service.NamedRef{ID: view.ID, Name: view.Name})
	}
	for _, template := range templates {
		meta.SearchTemplates = append(meta.SearchTemplates, service.NamedRef{ID: template.ID, Name: template.Name})
	}

	return service.NewEnvelope(meta, []*service.Sketch{sketch}), nil
}

func (s *sketchService) AttachTimelines(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.AttachTimelinesRequest) (*service.Created[service.EmptyMeta, *service.Sketch], error) {
	const op errs.Op = "sketchService.AttachTimelines"

	sketch, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	writable, err := s.sketchStorage.HasPermission(ctx, user.ID, sketchID, service.PermissionWrite)
	if err != nil {
		return nil, errs.E(op, err)
	}
	if !writable {
		return nil, errs.E(errs.Unauthorized, op, errs.UserName(user.Username), fmt.Errorf("user lacks write permission on sketch %s", sketchID))
	}

	attached := make(map[uuid.UUID]bool, len(sketch.Timelines))
	for _, timeline := range sketch.Timelines {
		if timeline.SearchIndex != nil {
			attached[timeline.SearchIndex.ID] = true
		}
	}

	readable, err := s.searchIndexStorage.ListReadableSearchIndices(ctx, user.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	readableByID := make(map[uuid.UUID]*service.SearchIndex, len(readable))
	for _, index := range readable {
		readableByID[index.ID] = index
	}

	for _, indexID := range in.Timelines {
		index, ok := readableByID[indexID]
		if !ok {
			return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("search index %s is not readable", indexID))
		}
		if attached[indexID] {
			continue
		}

		_, err := s.timelineStorage.CreateTimeline(ctx, sketchID, indexID, user.ID, index.Name, index.Description)
		if err != nil {
			return nil, errs.E(op, err)
		}
	}

	sketch, err = s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.Sketch{sketch}), nil
}

func NewSketchService(
	sketchStorage service.SketchStorage,
	timelineStorage service.TimelineStorage,
	searchIndexStorage service.SearchIndexStorage,
	viewStorage service.ViewStorage,
	searchTemplateStorage service.SearchTemplateStorage,
) *sketchService {
	return &sketchService{
		sketchStorage:         sketchStorage,
		timelineStorage:       timelineStorage,
		searchIndexStorage:    searchIndexStorage,
		viewStorage:           viewStorage,
		searchTemplateStorage: searchTemplateStorage,
	}
}
