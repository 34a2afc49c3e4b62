package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

type EventHandler struct {
	eventService service.EventService
}

func (h *EventHandler) GetEvent(ctx context.Context, r *http.Request, _ any) (*service.Envelope[service.EventMeta, map[string]any], error) {
	const op errs.Op = "EventHandler.GetEvent"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	in := &service.EventRequest{
		SearchIndexID: r.URL.Query().Get("searchindex_id"),
		EventID:       r.URL.Query().Get("event_id"),
	}

	err = in.Validate()
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, err)
	}

	event, err := h.eventService.GetEvent(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return event, nil
}

func (h *EventHandler) Annotate(ctx context.Context, _ *http.Request, in *service.AnnotateRequest) (*service.Created[service.EmptyMeta, *service.Annotation], error) {
	const op errs.Op = "EventHandler.Annotate"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = in.Validate()
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, err)
	}

	annotations, err := h.eventService.Annotate(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return annotations, nil
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}
