package core

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.TimelineService = &timelineService{}

type timelineService struct {
	sketchStorage   service.SketchStorage
	timelineStorage service.TimelineStorage
}

func (s *timelineService) ListTimelines(ctx context.Context, user *service.User, sketchID uuid.UUID) (*service.Envelope[service.EmptyMeta, *service.Timeline], error) {
	const op errs.Op = "timelineService.ListTimelines"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	timelines, err := s.timelineStorage.ListTimelines(ctx, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, timelines), nil
}

func (s *timelineService) GetTimeline(ctx context.Context, user *service.User, sketchID, timelineID uuid.UUID) (*service.Envelope[service.EmptyMeta, *service.Timeline], error) {
	const op errs.Op = "timelineService.GetTimeline"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	timeline, err := s.timelineStorage.GetTimeline(ctx, timelineID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	// A timeline id from another sketch must not leak through the
	// sketch scoped URL.
	if timeline.SketchID != sketchID {
		return nil, errs.E(errs.NotExist, op, fmt.Errorf("timeline %s does not belong to sketch %s", timelineID, sketchID))
	}

	return service.NewEnvelope(service.EmptyMeta{}, []*service.Timeline{timeline}), nil
}

func (s *timelineService) DeleteTimeline(ctx context.Context, user *service.User, sketchID, timelineID uuid.UUID) error {
	const op errs.Op = "timelineService.DeleteTimeline"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return errs.E(op, err)
	}

	writable, err := s.sketchStorage.HasPermission(ctx, user.ID, sketchID, service.PermissionWrite)
	if err != nil {
		return errs.E(op, err)
	}
	if !writable {
		return errs.E(errs.Unauthorized, op, errs.UserName(user.Username), fmt.Errorf("user lacks write permission on sketch %s", sketchID))
	}

	timeline, err := s.timelineStorage.GetTimeline(ctx, timelineID)
	if err != nil {
		return errs.E(op, err)
	}
	if timeline.SketchID != sketchID {
		return errs.E(errs.NotExist, op, fmt.Errorf("timeline %s does not belong to sketch %s", timelineID, sketchID))
	}

	err = s.timelineStorage.SetTimelineStatus(ctx, timelineID, service.EntityStatusDeleted)
	if err != nil {
		return errs.E(op, err)
	}

	return nil
}

func NewTimelineService(
	sketchStorage service.SketchStorage,
	timelineStorage service.TimelineStorage,
) *timelineService {
	return &timelineService{
		sketchStorage:   sketchStorage,
		timelineStorage: timelineStorage,
	}
}
