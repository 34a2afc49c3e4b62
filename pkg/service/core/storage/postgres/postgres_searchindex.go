package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/caseboard/caseboard-backend/pkg/database"
	"github.com/caseboard/caseboard-backend/pkg/database/gensql"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

type SearchIndexQueries interface {
	CreateSearchIndex(ctx context.Context, params gensql.CreateSearchIndexParams) (gensql.SearchIndex, error)
	GrantSearchIndexPermission(ctx context.Context, params gensql.GrantSearchIndexPermissionParams) error
}

var _ service.SearchIndexStorage = &searchIndexStorage{}

type SearchIndexQueriesWithTxFn func() (SearchIndexQueries, database.Transacter, error)

type searchIndexStorage struct {
	db       *database.Repo
	withTxFn SearchIndexQueriesWithTxFn
}

func (s *searchIndexStorage) GetSearchIndex(ctx context.Context, id uuid.UUID) (*service.SearchIndex, error) {
	const op errs.Op = "searchIndexStorage.GetSearchIndex"

	raw, err := s.db.Querier.GetSearchIndex(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return searchIndexFromSQL(raw), nil
}

func (s *searchIndexStorage) GetSearchIndexByIndexName(ctx context.Context, indexName string) (*service.SearchIndex, error) {
	const op errs.Op = "searchIndexStorage.GetSearchIndexByIndexName"

	raw, err := s.db.Querier.GetSearchIndexByIndexName(ctx, indexName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.E(errs.NotExist, op, err)
		}

		return nil, errs.E(errs.Database, op, err)
	}

	return searchIndexFromSQL(gensql.GetSearchIndexRow(raw)), nil
}

func (s *searchIndexStorage) ListReadableSearchIndices(ctx context.Context, userID uuid.UUID) ([]*service.SearchIndex, error) {
	const op errs.Op = "searchIndexStorage.ListReadableSearchIndices"

	raw, err := s.db.Querier.ListReadableSearchIndices(ctx, userID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	indices := make([]*service.SearchIndex, len(raw))
	for i, r := range raw {
		indices[i] = searchIndexFromSQL(gensql.GetSearchIndexRow(r))
	}

	return indices, nil
}

func (s *searchIndexStorage) ListProcessingSearchIndices(ctx context.Context, userID uuid.UUID) ([]*service.SearchIndex, error) {
	const op errs.Op = "searchIndexStorage.ListProcessingSearchIndices"

	raw, err := s.db.Querier.ListProcessingSearchIndices(ctx, userID)
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	indices := make([]*service.SearchIndex, len(raw))
	for i, r := range raw {
		indices[i] = searchIndexFromSQL(gensql.GetSearchIndexRow(r))
	}

	return indices, nil
}

func (s *searchIndexStorage) CreateSearchIndex(ctx context.Context, creator *service.User, newIndex *service.NewSearchIndex) (*service.SearchIndex, error) {
	const op errs.Op = "searchIndexStorage.CreateSearchIndex"

	q, tx, err := s.withTxFn()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}
	defer tx.Rollback()

	created, err := q.CreateSearchIndex(ctx, gensql.CreateSearchIndexParams{
		Name:        newIndex.Name,
		Description: newIndex.Description,
		IndexName:   newIndex.IndexName,
		UserID:      creator.ID,
		Status:      string(newIndex.Status),
	})
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	for _, permission := range service.AllPermissions {
		err := q.GrantSearchIndexPermission(ctx, gensql.GrantSearchIndexPermissionParams{
			SearchIndexID: created.ID,
			UserID:        creator.ID,
			Permission:    string(permission),
		})
		if err != nil {
			return nil, errs.E(errs.Database, op, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return nil, errs.E(errs.Database, op, err)
	}

	return &service.SearchIndex{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
		IndexName:   created.IndexName,
		User: &service.User{
			ID:       creator.ID,
			Username: creator.Username,
		},
		Status:    service.IndexStatus(created.Status),
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}

func (s *searchIndexStorage) SetSearchIndexStatus(ctx context.Context, id uuid.UUID, status service.IndexStatus) error {
	const op errs.Op = "searchIndexStorage.SetSearchIndexStatus"

	raw, err := s.db.Querier.GetSearchIndex(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.E(errs.NotExist, op, err)
		}

		return errs.E(errs.Database, op, err)
	}

	current := service.IndexStatus(raw.Status)
	if !current.CanTransition(status) {
		return errs.E(errs.Invalid, op, fmt.Errorf("search index status cannot move from %s to %s", current, status))
	}

	err = s.db.Querier.SetSearchIndexStatus(ctx, gensql.SetSearchIndexStatusParams{
		Status: string(status),
		ID:     id,
	})
	if err != nil {
		return errs.E(errs.Database, op, err)
	}

	return nil
}

func searchIndexFromSQL(raw gensql.GetSearchIndexRow) *service.SearchIndex {
	return &service.SearchIndex{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		IndexName:   raw.IndexName,
		User: &service.User{
			ID:       raw.UserID,
			Username: raw.UserUsername,
		},
		Status:    service.IndexStatus(raw.Status),
		CreatedAt: raw.CreatedAt,
		UpdatedAt: raw.UpdatedAt,
	}
}

func NewSearchIndexStorage(db *database.Repo, fn SearchIndexQueriesWithTxFn) *searchIndexStorage {
	return &searchIndexStorage{
		db:       db,
		withTxFn: fn,
	}
}
