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

var _ service.TimelineStorage = &timelineStorage{}

type timelineStorage struct {
	db *database.Repo
}

func (s *timelineStorage) GetTimeline(ctx context.Context, id uuid.UUID) (*service.Timeline, error) {
	const op errs.Op = "timelineStorage.GetTimeline"

	raw, err := s.db.Querier.GetTimeline(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return timelineFromSQL(raw), nil
}

func (s *timelineStorage) ListTimelines(ctx context.Context, sketchID uuid.UUID) ([]*service.Timeline, error) {
	const op errs.Op = "timelineStorage.ListTimelines"

	raw, err := s.db.Querier.ListTimelinesForSketch(ctx, sketchID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	timelines := make([]*service.Timeline, len(raw))
	for i, r := range raw {
		timelines[i] = timelineFromSQL(gensql.GetTimelineRow(r))
	}

	return timelines, nil
}

func (s *timelineStorage) CreateTimeline(ctx context.Context, sketchID, searchIndexID, userID uuid.UUID, name, description string) (*service.Timeline, error) {
	const op errs.Op = "timelineStorage.CreateTimeline"

	created, err := s.db.Querier.CreateTimeline(ctx, gensql.CreateTimelineParams{
		Name:          name,
		Description:   description,
		Color:         "",
		SketchID:      sketchID,
		SearchIndexID: searchIndexID,
		UserID:        userID,
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	timeline, err := s.GetTimeline(ctx, created.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return timeline, nil
}

func (s *timelineStorage) SetTimelineStatus(ctx context.Context, id uuid.UUID, status service.EntityStatus) error {
	const op errs.Op = "timelineStorage.SetTimelineStatus"

	err := s.db.Querier.SetTimelineStatus(ctx, gensql.SetTimelineStatusParams{
		Status: string(status),
		ID:     id,
	})
	if err != nil {
		return errs.E(errs.Database, op, err)
	}

	return nil
}

func timelineFromSQL(raw gensql.GetTimelineRow) *service.Timeline {
	return &service.Timeline{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Color:       raw.Color,
		User: &service.User{
			ID:       raw.UserID,
			Username: raw.UserUsername,
		},
		SearchIndex: &service.SearchIndex{
			ID:          raw.SearchIndexID,
			Name:        raw.SearchindexName,
			Description: raw.SearchindexDescription,
			IndexName:   raw.SearchindexIndexName,
			Status:      service.IndexStatus(raw.SearchindexStatus),
			CreatedAt:   raw.SearchindexCreatedAt,
			UpdatedAt:   raw.SearchindexUpdatedAt,
		},
		Status:    service.EntityStatus(raw.Status),
		SketchID:  raw.SketchID,
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
}

func NewTimelineStorage(db *database.Repo) *timelineStorage {
	return &timelineStorage{
		db: db,
	}
}
