package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

type GraphHandler struct {
	graphService service.GraphService
}

func (h *GraphHandler) Search(ctx context.Context, _ *http.Request, in *service.GraphRequest) (*service.Envelope[service.EmptyMeta, *service.GraphResult], error) {
	const op errs.Op = "GraphHandler.Search"

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

	result, err := h.graphService.Search(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return result, nil
}

func NewGraphHandler(graphService service.GraphService) *GraphHandler {
	return &GraphHandler{graphService: graphService}
}
