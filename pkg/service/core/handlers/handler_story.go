package handlers

import (
	"context"
	"net/http"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

type StoryHandler struct {
	storyService service.StoryService
}

func (h *StoryHandler) ListStories(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.EmptyMeta, *service.Story], error) {
	const op errs.Op = "StoryHandler.ListStories"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	stories, err := h.storyService.ListStories(ctx, user, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return stories, nil
}

func (h *StoryHandler) CreateStory(ctx context.Context, _ *http.Request, _ any) (*service.Created[service.EmptyMeta, *service.Story], error) {
	const op errs.Op = "StoryHandler.CreateStory"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	story, err := h.storyService.CreateStory(ctx, user, sketchID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return story, nil
}

func (h *StoryHandler) GetStory(ctx context.Context, _ *http.Request, _ any) (*service.Envelope[service.StoryMeta, *service.Story], error) {
	const op errs.Op = "StoryHandler.GetStory"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	storyID, err := uuidParam(ctx, "storyID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	story, err := h.storyService.GetStory(ctx, user, sketchID, storyID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return story, nil
}

func (h *StoryHandler) UpdateStory(ctx context.Context, _ *http.Request, in *service.UpdateStoryRequest) (*service.Created[service.EmptyMeta, *service.Story], error) {
	const op errs.Op = "StoryHandler.UpdateStory"

	user, err := userFromContext(ctx)
	if err != nil {
		return nil, errs.E(op, err)
	}

	sketchID, err := uuidParam(ctx, "id")
	if err != nil {
		return nil, errs.E(op, err)
	}

	storyID, err := uuidParam(ctx, "storyID")
	if err != nil {
		return nil, errs.E(op, err)
	}

	err = in.Validate()
	if err != nil {
		return nil, errs.E(errs.InvalidRequest, op, err)
	}

	story, err := h.storyService.UpdateStory(ctx, user, sketchID, storyID, in)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return story, nil
}

func NewStoryHandler(storyService service.StoryService) *StoryHandler {
	return &StoryHandler{storyService: storyService}
}
