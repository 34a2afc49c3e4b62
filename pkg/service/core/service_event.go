package core

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.EventService = &eventService{}

type eventService struct {
	sketchStorage      service.SketchStorage
	timelineStorage    service.TimelineStorage
	searchIndexStorage service.SearchIndexStorage
	eventStorage       service.EventStorage
	searchAPI          service.SearchAPI
}

// resolveSketchIndex maps a datastore index name to its search index
// record and verifies the index is reachable through a timeline of
// the sketch. Events must not be readable or writable through a
// sketch their index is not attached to.
func (s *eventService) resolveSketchIndex(ctx context.Context, sketchID uuid.UUID, indexName string) (*service.SearchIndex, error) {
	index, err := s.searchIndexStorage.GetSearchIndexByIndexName(ctx, indexName)
	if err != nil {
		if errs.KindIs(errs.NotExist, err) {
			return nil, errs.E(errs.InvalidRequest, fmt.Errorf("search index %q does not exist", indexName))
		}

		return nil, err
	}

	timelines, err := s.timelineStorage.ListTimelines(ctx, sketchID)
	if err != nil {
		return nil, err
	}

	for _, timeline := range timelines {
		if timeline.Status == service.EntityStatusDeleted || timeline.SearchIndex == nil {
			continue
		}
		if timeline.SearchIndex.ID == index.ID {
			return index, nil
		}
	}

	return nil, errs.E(errs.InvalidRequest, fmt.Errorf("search index %q does not belong to the sketch", indexName))
}

func (s *eventService) GetEvent(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.EventRequest) (*service.Envelope[service.EventMeta, map[string]any], error) {
	const op errs.Op = "eventService.GetEvent"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	index, err := s.resolveSketchIndex(ctx, sketchID, in.SearchIndexID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	source, err := s.searchAPI.GetEvent(ctx, index.IndexName, in.EventID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	// The comment trail lives on the database shadow of the event.
	// No shadow means nobody annotated the event yet.
	meta := service.EventMeta{Comments: []*service.Comment{}}

	event, err := s.eventStorage.GetEventByDocument(ctx, sketchID, index.ID, in.EventID)
	if err != nil && !errs.KindIs(errs.NotExist, err) {
		return nil, errs.E(op, err)
	}
	if err == nil {
		comments, err := s.eventStorage.ListEventComments(ctx, event.ID)
		if err != nil {
			return nil, errs.E(op, err)
		}
		meta.Comments = comments
	}

	return service.NewEnvelope(meta, []map[string]any{source}), nil
}

func (s *eventService) Annotate(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.AnnotateRequest) (*service.Created[service.EmptyMeta, *service.Annotation], error) {
	const op errs.Op = "eventService.Annotate"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
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

	// Resolve and verify every index before touching the database,
	// so a bad event reference fails the request without any writes.
	indexByName := make(map[string]*service.SearchIndex)
	annotations := make([]*service.NewAnnotation, 0, len(in.Events))

	for _, ref := range in.Events {
		if err := ref.Validate(); err != nil {
			return nil, errs.E(errs.InvalidRequest, op, err)
		}

		index, ok := indexByName[ref.Index]
		if !ok {
			index, err = s.resolveSketchIndex(ctx, sketchID, ref.Index)
			if err != nil {
				return nil, errs.E(op, err)
			}
			indexByName[ref.Index] = index
		}

		annotations = append(annotations, &service.NewAnnotation{
			SketchID:      sketchID,
			SearchIndexID: index.ID,
			DocumentID:    ref.ID,
			DocumentType:  ref.Type,
			Type:          in.AnnotationType,
			Text:          in.Annotation,
		})
	}

	result, err := s.eventStorage.AnnotateEvents(ctx, user, annotations)
	if err != nil {
		return nil, errs.E(op, err)
	}

	// Mirror the annotation into the datastore documents after the
	// database transaction committed. Comments leave a fixed marker
	// label, labels are written as themselves. Only the star and
	// hidden markers toggle on repeated application.
	for _, ref := range in.Events {
		label := in.Annotation
		toggle := in.Annotation == service.StarLabel || in.Annotation == service.HiddenLabel
		if in.AnnotationType == service.AnnotationTypeComment {
			label = service.CommentMarkerLabel
			toggle = false
		}

		err = s.searchAPI.SetLabel(ctx, ref.Index, ref.ID, ref.Type, sketchID, user.ID, label, toggle)
		if err != nil {
			return nil, errs.E(op, err)
		}
	}

	return service.NewCreated(service.EmptyMeta{}, result), nil
}

func NewEventService(
	sketchStorage service.SketchStorage,
	timelineStorage service.TimelineStorage,
	searchIndexStorage service.SearchIndexStorage,
	eventStorage service.EventStorage,
	searchAPI service.SearchAPI,
) *eventService {
	return &eventService{
		sketchStorage:      sketchStorage,
		timelineStorage:    timelineStorage,
		searchIndexStorage: searchIndexStorage,
		eventStorage:       eventStorage,
		searchAPI:          searchAPI,
	}
}
