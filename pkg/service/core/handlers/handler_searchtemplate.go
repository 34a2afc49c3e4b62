package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

type SearchTemplateHandler struct {
	searchTemplateService service.SearchTemplateService
}

func (h *SearchTemplateHandler) ListSearchTemplates(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.SearchTemplate], error) {
	const op errs.Op = "SearchTemplateHandler.ListSearchTemplates"

	_, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	templates, err := h.searchTemplateService.ListSearchTemplates(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return templates, nil
}

func (h *SearchTemplateHandler) GetSearchTemplate(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.SearchTemplate], error) {
	const op errs.Op = "SearchTemplateHandler.GetSearchTemplate"

	_, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	id, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	template, err := h.searchTemplateService.GetSearchTemplate(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return template, nil
}

func NewSearchTemplateHandler(searchTemplateService service.SearchTemplateService) *SearchTemplateHandler {
	return &SearchTemplateHandler{searchTemplateService: searchTemplateService}
}
