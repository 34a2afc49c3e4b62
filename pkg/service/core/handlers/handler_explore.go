package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

type ExploreHandler struct {
	exploreService service.ExploreService
}

func (h *ExploreHandler) Explore(ctx context.Context, _ *http.Request, in *service.ExploreRequest) (*service.Envelope[service.ExploreMeta, *service.SearchEvent], error) {
	const op errs.Op = "ExploreHandler.Explore"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	result, err := h.exploreService.Explore(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func (h *ExploreHandler) Aggregate(ctx context.Context, _ *http.Request, in *service.AggregationRequest) (*service.Envelope[service.EmptyMeta, json.RawMessage], error) {
	const op errs.Op = "ExploreHandler.Aggregate"

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

	result, err := h.exploreService.Aggregate(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func (h *ExploreHandler) BuildQuery(ctx context.Context, _ *http.Request, in *service.ExploreRequest) (*service.Envelope[service.EmptyMeta, json.RawMessage], error) {
	const op errs.Op = "ExploreHandler.BuildQuery"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	result, err := h.exploreService.BuildQuery(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func (h *ExploreHandler) CountEvents(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.CountMeta, json.RawMessage], error) {
	const op errs.Op = "ExploreHandler.CountEvents"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	result, err := h.exploreService.CountEvents(ctx, user, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func NewExploreHandler(exploreService service.ExploreService) *ExploreHandler {
	return &ExploreHandler{exploreService: exploreService}
}
