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

type SketchQueries interface {
	CreateSketch(ctx context.Context, params gensql.CreateSketchParams) (gensql.Sketch, error)
	GrantSketchPermission(ctx context.Context, params gensql.GrantSketchPermissionParams) error
}

var _ service.SketchStorage = &sketchStorage{}

type SketchQueriesWithTxFn func() (SketchQueries, database.Transacter, error)

type sketchStorage struct {
	db       *database.Repo
	withTxFn SketchQueriesWithTxFn
}

func (s *sketchStorage) GetSketch(ctx context.Context, userID, id uuid.UUID) (*service.Sketch, error) {
	const op errs.Op = "sketchStorage.GetSketch"

	raw, err := s.db.Querier.GetSketch(ctx, gensql.GetSketchParams{
		ID:       id,
		ViewerID: userID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	sketch := sketchFromSQL(raw)

	timelines, err := s.db.Querier.ListTimelinesForSketch(ctx, id)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	for _, t := range timelines {
		sketch.Timelines = append(sketch.Timelines, timelineFromSQL(gensql.GetTimelineRow(t)))
	}

	return sketch, nil
}

func (s *sketchStorage) ListSketches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*service.Sketch, int64, error) {
	const op errs.Op = "sketchStorage.ListSketches"

	raw, err := s.db.Querier.ListSketchesForUser(ctx, gensql.ListSketchesForUserParams{
		ViewerID: userID,
		Lim:      int32(limit),
		Off:      int32(offset),
	})
	if err != nil {
		return nil, 0, errs.E(errs.Database, op, err)
	}

	total, err := s.db.Querier.CountSketchesForUser(ctx, userID)
	if err != nil {
		return nil, 0, errs.E(errs.Database, op, err)
	}

	sketches := make([]*service.Sketch, len(raw))
	for i, r := range raw {
		sketches[i] = sketchFromSQL(gensql.GetSketchRow(r))
	}

	return sketches, total, nil
}

func (s *sketchStorage) CreateSketch(ctx context.Context, creator *service.User, newSketch *service.NewSketch) (*service.Sketch, error) {
	const op errs.Op = "sketchStorage.CreateSketch"

	// The insert and the creator grants commit together. A sketch
	// without a read grant is invisible to everyone, including its
	// creator, and can never be repaired through the API.
	q, tx, err := s.withTxFn()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}
	defer tx.Rollback()

	created, err := q.CreateSketch(ctx, gensql.CreateSketchParams{
		Name:        newSketch.Name,
		Description: newSketch.Description,
		UserID:      creator.ID,
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	for _, permission := range service.AllPermissions {
		err := q.GrantSketchPermission(ctx, gensql.GrantSketchPermissionParams{
			SketchID:   created.ID,
			UserID:     creator.ID,
			Permission: string(permission),
		})
		if err != nil {
			return nil, errs.E(errs.Database, op, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	return &service.Sketch{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		User: &service.User{
			ID:       creator.ID,
			Username: creator.Username,
		},
		Timelines: []*service.Timeline{},
		Status:    service.EntityStatus(created.Status),
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

func (s *sketchStorage) HasPermission(ctx context.Context, userID, sketchID uuid.UUID, permission service.Permission) (bool, error) {
	const op errs.Op = "sketchStorage.HasPermission"

	ok, err := s.db.Querier.HasSketchPermission(ctx, gensql.HasSketchPermissionParams{
		SketchID:   sketchID,
		UserID:     userID,
		Permission: string(permission),
	})
	if err != nil {
		return false, errs.E(errs.Database, op, err)
	}

	return ok, nil
}

func (s *sketchStorage) SetSketchStatus(ctx context.Context, id uuid.UUID, status service.EntityStatus) error {
	const op errs.Op = "sketchStorage.SetSketchStatus"

	err := s.db.Querier.SetSketchStatus(ctx, gensql.SetSketchStatusParams{
		Status: string(status),
		ID:     id,
	})
	if err != nil {
		return errs.E(errs.Database, op, err)
	}

	return nil
}

func sketchFromSQL(raw gensql.GetSketchRow) *service.Sketch {
	return &service.Sketch{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		User: &service.User{
			ID:       raw.UserID,
			Username: raw.UserUsername,
		},
		Timelines: []*service.Timeline{},
		Status:    service.EntityStatus(raw.Status),
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
}

func NewSketchStorage(db *database.Repo, fn SketchQueriesWithTxFn) *sketchStorage {
	return &sketchStorage{
		db:       db,
		withTxFn: fn,
	}
}
