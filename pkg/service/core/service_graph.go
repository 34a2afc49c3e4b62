package core

import (
	"context"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.GraphService = &graphService{}

type graphService struct {
	sketchStorage service.SketchStorage
	graphAPI      service.GraphAPI
}

func (s *graphService) Search(ctx context.Context, user *service.User, sketchID uuid.UUID, in *service.GraphRequest) (*service.Envelope[service.EmptyMeta, *service.GraphResult], error) {
	const op errs.Op = "graphService.Search"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	if s.graphAPI == nil {
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("graph datastore is not configured"))
	}

	result, err := s.graphAPI.Search(ctx, in.Query, in.OutputFormat)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, []*service.GraphResult{result}), nil
}

func NewGraphService(
	sketchStorage service.SketchStorage,
	graphAPI service.GraphAPI,
) *graphService {
	return &graphService{
		sketchStorage: sketchStorage,
		graphAPI:      graphAPI,
	}
}
