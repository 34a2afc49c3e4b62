package core

import (
	"context"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.SearchTemplateService = &searchTemplateService{}

type searchTemplateService struct {
	searchTemplateStorage service.SearchTemplateStorage
}

func (s *searchTemplateService) GetSearchTemplate(ctx context.Context, id uuid.UUID) (*service.Envelope[service.EmptyMeta, *service.SearchTemplate], error) {
	const op errs.Op = "searchTemplateService.GetSearchTemplate"

	template, err := s.searchTemplateStorage.GetSearchTemplate(ctx, id)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, []*service.SearchTemplate{template}), nil
}

func (s *searchTemplateService) ListSearchTemplates(ctx context.Context) (*service.Envelope[service.EmptyMeta, *service.SearchTemplate], error) {
	const op errs.Op = "searchTemplateService.ListSearchTemplates"

	templates, err := s.searchTemplateStorage.ListSearchTemplates(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, templates), nil
}

func NewSearchTemplateService(storage service.SearchTemplateStorage) *searchTemplateService {
	return &searchTemplateService{searchTemplateStorage: storage}
}
