package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
)

type TimelineHandler struct {
	timelineService service.TimelineService
}

func (h *TimelineHandler) ListTimelines(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.Timeline], error) {
	const op errs.Op = "TimelineHandler.ListTimelines"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	timelines, err := h.timelineService.ListTimelines(ctx, user, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return timelines, nil
}

func (h *TimelineHandler) GetTimeline(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.Timeline], error) {
	const op errs.Op = "TimelineHandler.GetTimeline"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	timelineID, err := uuidParam(ctx, "timelineID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	timeline, err := h.timelineService.GetTimeline(ctx, user, sketchID, timelineID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return timeline, nil
}

func (h *TimelineHandler) DeleteTimeline(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	const op errs.Op = "TimelineHandler.DeleteTimeline"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	timelineID, err := uuidParam(ctx, "timelineID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = h.timelineService.DeleteTimeline(ctx, user, sketchID, timelineID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return &transport.Empty{}, nil
}

func NewTimelineHandler(timelineService service.TimelineService) *TimelineHandler {
	return &TimelineHandler{timelineService: timelineService}
}
