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

var _ service.SearchTemplateStorage = &searchTemplateStorage{}

type searchTemplateStorage struct {
	db *database.Repo
}

func (s *searchTemplateStorage) GetSearchTemplate(ctx context.Context, id uuid.UUID) (*service.SearchTemplate, error) {
	const op errs.Op = "searchTemplateStorage.GetSearchTemplate"

	raw, err := s.db.Querier.GetSearchTemplate(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return searchTemplateFromSQL(raw), nil
}

func (s *searchTemplateStorage) ListSearchTemplates(ctx context.Context) ([]*service.SearchTemplate, error) {
	const op errs.Op = "searchTemplateStorage.ListSearchTemplates"

	raw, err := s.db.Querier.ListSearchTemplates(ctx)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	templates := make([]*service.SearchTemplate, len(raw))
	for i, r := range raw {
		templates[i] = searchTemplateFromSQL(gensql.GetSearchTemplateRow(r))
	}

	return templates, nil
}

func (s *searchTemplateStorage) CreateSearchTemplate(ctx context.Context, newTemplate *service.NewSearchTemplate) (*service.SearchTemplate, error) {
	const op errs.Op = "searchTemplateStorage.CreateSearchTemplate"

	created, err := s.db.Querier.CreateSearchTemplate(ctx, gensql.CreateSearchTemplateParams{
		Name:        newTemplate.Name,
		UserID:      newTemplate.UserID,
		QueryString: newTemplate.QueryString,
		QueryFilter: emptyFilter(newTemplate.QueryFilter),
		QueryDsl:    rawToNullRaw(newTemplate.QueryDSL),
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	return &service.SearchTemplate{
		ID:          created.ID,
		Name:        created.Name,
		User:        &service.User{ID: created.UserID},
		QueryString: created.QueryString,
		QueryFilter: created.QueryFilter,
		QueryDSL:    nullRawToRaw(created.QueryDsl),
		CreatedAt:   created.CreatedAt,
		UpdatedAt:   created.UpdatedAt,
	}, nil
}

func searchTemplateFromSQL(raw gensql.GetSearchTemplateRow) *service.SearchTemplate {
	return &service.SearchTemplate{
		ID:   raw.ID,
		Name: raw.Name,
		User: &service.User{
			ID:       raw.UserID,
			Username: raw.UserUsername,
		},
		QueryString: raw.QueryString,
		QueryFilter: raw.QueryFilter,
		QueryDSL:    nullRawToRaw(raw.QueryDsl),
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
}

func NewSearchTemplateStorage(db *database.Repo) *searchTemplateStorage {
	return &searchTemplateStorage{
		db: db,
	}
}
