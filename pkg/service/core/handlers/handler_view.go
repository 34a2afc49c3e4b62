package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core/transport"
)

type ViewHandler struct {
	viewService service.ViewService
}

func (h *ViewHandler) ListViews(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.View], error) {
	const op errs.Op = "ViewHandler.ListViews"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	views, err := h.viewService.ListViews(ctx, user, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return views, nil
}

func (h *ViewHandler) CreateView(ctx context.Context, _ *http.Request, in *service.SaveViewRequest) (*service.Created[service.EmptyMeta, *service.View], error) {
	const op errs.Op = "ViewHandler.CreateView"

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

	view, err := h.viewService.CreateView(ctx, user, sketchID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return view, nil
}

func (h *ViewHandler) GetView(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.ViewMeta, *service.View], error) {
	const op errs.Op = "ViewHandler.GetView"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	viewID, err := uuidParam(ctx, "viewID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	view, err := h.viewService.GetView(ctx, user, sketchID, viewID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return view, nil
}

func (h *ViewHandler) UpdateView(ctx context.Context, _ *http.Request, in *service.SaveViewRequest) (*service.Created[service.EmptyMeta, *service.View], error) {
	const op errs.Op = "ViewHandler.UpdateView"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	viewID, err := uuidParam(ctx, "viewID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	view, err := h.viewService.UpdateView(ctx, user, sketchID, viewID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return view, nil
}

func (h *ViewHandler) DeleteView(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	const op errs.Op = "ViewHandler.DeleteView"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	viewID, err := uuidParam(ctx, "viewID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = h.viewService.DeleteView(ctx, user, sketchID, viewID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return &transport.Empty{}, nil
}

func NewViewHandler(viewService service.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}
