package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/database"
	"github.com/caseboard/caseboard-backend/pkg/database/gensql"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core/storage/postgres"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransacter struct {
	commits   int
	rollbacks int
}

func (f *fakeTransacter) Commit() error {
	f.commits++
	return nil
}

func (f *fakeTransacter) Rollback() error {
	f.rollbacks++
	return nil
}

type fakeSketchQueries struct {
	createSketchFn func(ctx context.Context, params gensql.CreateSketchParams) (gensql.Sketch, error)
	grantFn        func(ctx context.Context, params gensql.GrantSketchPermissionParams) error
}

func (f *fakeSketchQueries) CreateSketch(ctx context.Context, params gensql.CreateSketchParams) (gensql.Sketch, error) {
	return f.createSketchFn(ctx, params)
}

func (f *fakeSketchQueries) GrantSketchPermission(ctx context.Context, params gensql.GrantSketchPermissionParams) error {
	return f.grantFn(ctx, params)
}

func sketchQueriesWithTx(q postgres.SketchQueries, tx database.Transacter) postgres.SketchQueriesWithTxFn {
	return func() (postgres.SketchQueries, database.Transacter, error) {
		return q, tx, nil
	}
}

func TestCreateSketchCommitsInsertAndGrantsTogether(t *testing.T) {
	creator := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()

	var grants []string

	queries := &fakeSketchQueries{
		createSketchFn: func(_ context.Context, params gensql.CreateSketchParams) (gensql.Sketch, error) {
			require.Equal(t, creator.ID, params.UserID)

			return gensql.Sketch{
				ID:          sketchID,
				Name:        params.Name,
				Description: params.Description,
				UserID:      params.UserID,
				Status:      "new",
			}, nil
		},
		grantFn: func(_ context.Context, params gensql.GrantSketchPermissionParams) error {
			require.Equal(t, sketchID, params.SketchID)
			require.Equal(t, creator.ID, params.UserID)
			grants = append(grants, params.Permission)

			return nil
		},
	}
	tx := &fakeTransacter{}

	storage := postgres.NewSketchStorage(nil, sketchQueriesWithTx(queries, tx))

	sketch, err := storage.CreateSketch(context.Background(), creator, &service.NewSketch{
		Name:        "intrusion 2026-08",
		Description: "webserver compromise",
	})
	require.NoError(t, err)

	assert.Equal(t, sketchID, sketch.ID)
	assert.Equal(t, []string{"read", "write", "delete"}, grants)
	assert.Equal(t, 1, tx.commits)
}

func TestCreateSketchRollsBackWhenAGrantFails(t *testing.T) {
	creator := &service.User{ID: uuid.New(), Username: "hutch"}

	queries := &fakeSketchQueries{
		createSketchFn: func(_ context.Context, params gensql.CreateSketchParams) (gensql.Sketch, error) {
			return gensql.Sketch{ID: uuid.New(), Name: params.Name, UserID: params.UserID, Status: "new"}, nil
		},
		grantFn: func(_ context.Context, _ gensql.GrantSketchPermissionParams) error {
			return fmt.Errorf("connection reset")
		},
	}
	tx := &fakeTransacter{}

	storage := postgres.NewSketchStorage(nil, sketchQueriesWithTx(queries, tx))

	_, err := storage.CreateSketch(context.Background(), creator, &service.NewSketch{Name: "intrusion 2026-08"})
	require.Error(t, err)

	// The insert must not survive without the creator's grants, a
	// sketch nobody can read is unreachable through the API.
	assert.Equal(t, 0, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
}
