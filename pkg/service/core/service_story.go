package core

import (
	"context"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.StoryService = &storyService{}

type storyService struct {
	sketchStorage service.SketchStorage
	storyStorage  service.StoryStorage
}

func (s *storyService) ListStories(ctx context.Context, user *service.User, sketchID uuid.UUID) (*service.Envelope[service.EmptyMeta, *service.Story], error) {
	const op errs.Op = "storyService.ListStories"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	stories, err := s.storyStorage.ListStories(ctx, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewEnvelope(service.EmptyMeta{}, stories), nil
}

func (s *storyService) CreateStory(ctx context.Context, user *service.User, sketchID uuid.UUID) (*service.Created[service.EmptyMeta, *service.Story], error) {
	const op errs.Op = "storyService.CreateStory"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	// Stories start empty, the editor saves title and content later.
	story, err := s.storyStorage.CreateStory(ctx, sketchID, user.ID, "", "")
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.Story{story}), nil
}

func (s *storyService) GetStory(ctx context.Context, user *service.User, sketchID, storyID uuid.UUID) (*service.Envelope[service.StoryMeta, *service.Story], error) {
	const op errs.Op = "storyService.GetStory"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	story, err := s.storyStorage.GetStory(ctx, sketchID, storyID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	meta := service.StoryMeta{
		IsEditable: story.UserID == user.ID,
	}

	return service.NewEnvelope(meta, []*service.Story{story}), nil
}

func (s *storyService) UpdateStory(ctx context.Context, user *service.User, sketchID, storyID uuid.UUID, in *service.UpdateStoryRequest) (*service.Created[service.EmptyMeta, *service.Story], error) {
	const op errs.Op = "storyService.UpdateStory"

	_, err := s.sketchStorage.GetSketch(ctx, user.ID, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	story, err := s.storyStorage.UpdateStory(ctx, sketchID, storyID, in.Title, in.Content)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.Story{story}), nil
}

func NewStoryService(
	sketchStorage service.SketchStorage,
	storyStorage service.StoryStorage,
) *storyService {
	return &storyService{
		sketchStorage: sketchStorage,
		storyStorage:  storyStorage,
	}
}
