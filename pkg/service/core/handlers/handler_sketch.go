package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type SketchHandler struct {
	sketchService service.SketchService
}

func (h *SketchHandler) ListSketches(ctx context.Context, r *http.Request, _ any) (*service.Envelope[service.SketchListMeta, *service.Sketch], error) {
	const op errs.Op = "SketchHandler.ListSketches"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	page := defaultPage
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("page"), errs.Str("page must be a positive integer"))
		}
	}

	size := defaultPageSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size < 1 {
			return nil, errs.E(errs.InvalidRequest, op, errs.Parameter("size"), errs.Str("size must be a positive integer"))
		}
	}

	sketches, err := h.sketchService.ListSketches(ctx, user, page, size)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return sketches, nil
}

func (h *SketchHandler) CreateSketch(ctx context.Context, _ *http.Request, in *service.NewSketch) (*service.Created[service.EmptyMeta, *service.Sketch], error) {
	const op errs.Op = "SketchHandler.CreateSketch"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = in.Validate()
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, err)
	}

	sketch, err := h.sketchService.CreateSketch(ctx, user, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return sketch, nil
}

func (h *SketchHandler) GetSketch(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.SketchMeta, *service.Sketch], error) {
	const op errs.Op = "SketchHandler.GetSketch"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	id, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketch, err := h.sketchService.GetSketch(ctx, user, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return sketch, nil
}

func (h *SketchHandler) AttachTimelines(ctx context.Context, _ *http.Request, in *service.AttachTimelinesRequest) (*service.Created[service.EmptyMeta, *service.Sketch], error) {
	const op errs.Op = "SketchHandler.AttachTimelines"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	id, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = in.Validate()
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, err)
	}

	sketch, err := h.sketchService.AttachTimelines(ctx, user, id, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return sketch, nil
}

func NewSketchHandler(sketchService service.SketchService) *SketchHandler {
	return &SketchHandler{sketchService: sketchService}
}
