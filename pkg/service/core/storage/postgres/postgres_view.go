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

var _ service.ViewStorage = &viewStorage{}

type viewStorage struct {
	db *database.Repo
}

func (s *viewStorage) GetView(ctx context.Context, sketchID, id uuid.UUID) (*service.View, error) {
	const op errs.Op = "viewStorage.GetView"

	raw, err := s.db.Querier.GetView(ctx, gensql.GetViewParams{
		ID:       id,
		SketchID: sketchID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	view := viewFromSQL(raw)

	if raw.SearchTemplateID.Valid {
		template, err := s.db.Querier.GetSearchTemplate(ctx, raw.SearchTemplateID.UUID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.Database, op, err)
		}
		if err == nil {
			view.SearchTemplate = searchTemplateFromSQL(template)
		}
	}

	return view, nil
}

func (s *viewStorage) ListNamedViews(ctx context.Context, sketchID uuid.UUID) ([]*service.View, error) {
	const op errs.Op = "viewStorage.ListNamedViews"

	raw, err := s.db.Querier.ListNamedViews(ctx, sketchID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	views := make([]*service.View, len(raw))
	for i, r := range raw {
		views[i] = viewFromSQL(gensql.GetViewRow(r))
	}

	return views, nil
}

func (s *viewStorage) CreateView(ctx context.Context, newView *service.NewView) (*service.View, error) {
	const op errs.Op = "viewStorage.CreateView"

	created, err := s.db.Querier.CreateView(ctx, gensql.CreateViewParams{
		Name:             newView.Name,
		SketchID:         newView.SketchID,
		UserID:           newView.UserID,
		QueryString:      newView.QueryString,
		QueryFilter:      emptyFilter(newView.QueryFilter),
		QueryDsl:         rawToNullRaw(newView.QueryDSL),
		SearchTemplateID: uuidPtrToNullUUID(newView.SearchTemplateID),
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	view, err := s.GetView(ctx, created.SketchID, created.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return view, nil
}

func (s *viewStorage) UpdateView(ctx context.Context, sketchID, id uuid.UUID, name string, update *service.ViewUpdate) (*service.View, error) {
	const op errs.Op = "viewStorage.UpdateView"

	updated, err := s.db.Querier.UpdateView(ctx, gensql.UpdateViewParams{
		Name:        name,
		QueryString: update.QueryString,
		QueryFilter: emptyFilter(update.QueryFilter),
		QueryDsl:    rawToNullRaw(update.QueryDSL),
		ID:          id,
		SketchID:    sketchID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	view, err := s.GetView(ctx, updated.SketchID, updated.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return view, nil
}

func (s *viewStorage) UpsertStateView(ctx context.Context, sketchID, userID uuid.UUID, update *service.ViewUpdate) (*service.View, error) {
	const op errs.Op = "viewStorage.UpsertStateView"

	upserted, err := s.db.Querier.UpsertStateView(ctx, gensql.UpsertStateViewParams{
		SketchID:    sketchID,
		UserID:      userID,
		QueryString: update.QueryString,
		QueryFilter: emptyFilter(update.QueryFilter),
		QueryDsl:    rawToNullRaw(update.QueryDSL),
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	return &service.View{
		ID:          upserted.ID,
		Name:        upserted.Name,
		User:        &service.User{ID: upserted.UserID},
		QueryString: upserted.QueryString,
		QueryFilter: upserted.QueryFilter,
		QueryDSL:    nullRawToRaw(upserted.QueryDsl),
		Status:      service.EntityStatus(upserted.Status),
		SketchID:    upserted.SketchID,
		CreatedAt:   upserted.CreatedAt,
		UpdatedAt:   upserted.UpdatedAt,
	}, nil
}

func (s *viewStorage) SetViewStatus(ctx context.Context, sketchID, id uuid.UUID, status service.EntityStatus) error {
	const op errs.Op = "viewStorage.SetViewStatus"

	err := s.db.Querier.SetViewStatus(ctx, gensql.SetViewStatusParams{
		Status:   string(status),
		ID:       id,
		SketchID: sketchID,
	})
	if err != nil {
		return errs.E(errs.Database, op, err)
	}

	return nil
}

func viewFromSQL(raw gensql.GetViewRow) *service.View {
	return &service.View{
		ID:   raw.ID,
		Name: raw.Name,
		User: &service.User{
			ID:       raw.UserID,
			Username: raw.UserUsername,
		},
		QueryString: raw.QueryString,
		QueryFilter: raw.QueryFilter,
		QueryDSL:    nullRawToRaw(raw.QueryDsl),
		Status:      service.EntityStatus(raw.Status),
		SketchID:    raw.SketchID,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
}

func NewViewStorage(db *database.Repo) *viewStorage {
	return &viewStorage{
		db: db,
	}
}
