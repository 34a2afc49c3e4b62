package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/caseboard/caseboard-backend/pkg/database"
	"github.com/caseboard/caseboard-backend/pkg/database/gensql"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

var _ service.StoryStorage = &storyStorage{}

type storyStorage struct {
	db *database.Repo
}

func (s *storyStorage) GetStory(ctx context.Context, sketchID, id uuid.UUID) (*service.Story, error) {
	const op errs.Op = "storyStorage.GetStory"

	raw, err := s.db.Querier.GetStory(ctx, gensql.GetStoryParams{
		ID:       id,
		SketchID: sketchID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return storyFromSQL(raw), nil
}

func (s *storyStorage) ListStories(ctx context.Context, sketchID uuid.UUID) ([]*service.Story, error) {
	const op errs.Op = "storyStorage.ListStories"

	raw, err := s.db.Querier.ListStoriesForSketch(ctx, sketchID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	stories := make([]*service.Story, len(raw))
	for i, r := range raw {
		stories[i] = storyFromSQL(gensql.GetStoryRow(r))
	}

	return stories, nil
}

func (s *storyStorage) CreateStory(ctx context.Context, sketchID, userID uuid.UUID, title, content string) (*service.Story, error) {
	const op errs.Op = "storyStorage.CreateStory"

	created, err := s.db.Querier.CreateStory(ctx, gensql.CreateStoryParams{
		Title:    title,
		Content:  content,
		SketchID: sketchID,
		UserID:   userID,
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	story, err := s.GetStory(ctx, created.SketchID, created.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return story, nil
}

func (s *storyStorage) UpdateStory(ctx context.Context, sketchID, id uuid.UUID, title, content string) (*service.Story, error) {
	const op errs.Op = "storyStorage.UpdateStory"

	updated, err := s.db.Querier.UpdateStory(ctx, gensql.UpdateStoryParams{
		Title:    title,
		Content:  content,
		ID:       id,
		SketchID: sketchID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	story, err := s.GetStory(ctx, updated.SketchID, updated.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return story, nil
}

func storyFromSQL(raw gensql.GetStoryRow) *service.Story {
	return &service.Story{
		ID:      raw.ID,
		Title:   raw.Title,
		Content: raw.Content,
		User: &service.User{
			ID:       raw.UserID,
			Username: raw.UserUsername,
		},
		SketchID:  raw.SketchID,
		UserID:    raw.UserID,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
}

func NewStoryStorage(db *database.Repo) *storyStorage {
	return &storyStorage{
		db: db,
	}
}
