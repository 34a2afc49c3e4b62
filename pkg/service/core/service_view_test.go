package core_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSketchStorage() *fakeSketchStorage {
	return &fakeSketchStorage{
		getSketchFn: func(_ context.Context, userID, id uuid.UUID) (*service.Sketch, error) {
			return &service.Sketch{ID: id, Status: service.EntityStatusActive}, nil
		},
		hasPermissionFn: func(_ context.Context, _, _ uuid.UUID, _ service.Permission) (bool, error) {
			return true, nil
		},
	}
}

func mustMarshalFilter(t *testing.T, f service.QueryFilter) json.RawMessage {
	t.Helper()

	raw, err := service.MarshalFilter(f)
	require.NoError(t, err)

	return raw
}

func TestCreateViewFromTemplateDiscardsSubmittedValues(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	templateID := uuid.New()

	template := &service.SearchTemplate{
		ID:          templateID,
		Name:        "failed logons",
		QueryString: "event_identifier:4625",
		QueryFilter: mustMarshalFilter(t, service.QueryFilter{Indices: []string{service.AllIndices}}),
	}

	var created *service.NewView

	views := &fakeViewStorage{
		createViewFn: func(_ context.Context, newView *service.NewView) (*service.View, error) {
			created = newView
			return &service.View{ID: uuid.New(), Name: newView.Name}, nil
		},
	}
	templates := &fakeSearchTemplateStorage{
		getSearchTemplateFn: func(_ context.Context, id uuid.UUID) (*service.SearchTemplate, error) {
			require.Equal(t, templateID, id)
			return template, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, templates)

	_, err := svc.CreateView(context.Background(), user, sketchID, &service.SaveViewRequest{
		Name:                 "this name is discarded",
		Query:                "so is this query",
		FromSearchTemplateID: &templateID,
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, "failed logons", created.Name)
	assert.Equal(t, "event_identifier:4625", created.QueryString)
	require.NotNil(t, created.SearchTemplateID)
	assert.Equal(t, templateID, *created.SearchTemplateID)
}

func TestCreateViewNewTemplateSnapshotsWithWildcardIndices(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	newTemplateID := uuid.New()

	var snapshot *service.NewSearchTemplate
	var created *service.NewView

	views := &fakeViewStorage{
		createViewFn: func(_ context.Context, newView *service.NewView) (*service.View, error) {
			created = newView
			return &service.View{ID: uuid.New(), Name: newView.Name}, nil
		},
	}
	templates := &fakeSearchTemplateStorage{
		createSearchTemplateFn: func(_ context.Context, newTemplate *service.NewSearchTemplate) (*service.SearchTemplate, error) {
			snapshot = newTemplate
			return &service.SearchTemplate{ID: newTemplateID, Name: newTemplate.Name}, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, templates)

	_, err := svc.CreateView(context.Background(), user, sketchID, &service.SaveViewRequest{
		Name:              "suspicious processes",
		Query:             "process_name:mimikatz",
		Filter:            service.QueryFilter{Indices: []string{"idx-sketch-local"}},
		NewSearchTemplate: true,
	})
	require.NoError(t, err)

	require.NotNil(t, snapshot)

	filter, err := service.ParseQueryFilter(snapshot.QueryFilter)
	require.NoError(t, err)
	assert.Equal(t, []string{service.AllIndices}, filter.Indices,
		"the template must not be pinned to the indices of one sketch")

	require.NotNil(t, created)
	require.NotNil(t, created.SearchTemplateID)
	assert.Equal(t, newTemplateID, *created.SearchTemplateID)
}

func TestCreateViewFromTemplateAndNewTemplateSnapshotsDerivedFilter(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	sourceTemplateID := uuid.New()
	newTemplateID := uuid.New()

	source := &service.SearchTemplate{
		ID:          sourceTemplateID,
		Name:        "lateral movement",
		QueryString: "event_identifier:4624 AND logon_type:3",
		QueryFilter: mustMarshalFilter(t, service.QueryFilter{Indices: []string{"idx-dc01"}, Size: 25}),
	}

	var snapshot *service.NewSearchTemplate
	var created *service.NewView

	views := &fakeViewStorage{
		createViewFn: func(_ context.Context, newView *service.NewView) (*service.View, error) {
			created = newView
			return &service.View{ID: uuid.New(), Name: newView.Name}, nil
		},
	}
	templates := &fakeSearchTemplateStorage{
		getSearchTemplateFn: func(_ context.Context, id uuid.UUID) (*service.SearchTemplate, error) {
			require.Equal(t, sourceTemplateID, id)
			return source, nil
		},
		createSearchTemplateFn: func(_ context.Context, newTemplate *service.NewSearchTemplate) (*service.SearchTemplate, error) {
			snapshot = newTemplate
			return &service.SearchTemplate{ID: newTemplateID, Name: newTemplate.Name}, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, templates)

	_, err := svc.CreateView(context.Background(), user, sketchID, &service.SaveViewRequest{
		Name:                 "submitted name loses",
		Query:                "submitted query loses",
		Filter:               service.QueryFilter{Indices: []string{"idx-submitted"}, Size: 7},
		FromSearchTemplateID: &sourceTemplateID,
		NewSearchTemplate:    true,
	})
	require.NoError(t, err)

	// The snapshot is taken after the derivation, so it carries the
	// source template's values, not the submitted ones, with only the
	// index selection widened to the wildcard.
	require.NotNil(t, snapshot)
	assert.Equal(t, "lateral movement", snapshot.Name)
	assert.Equal(t, "event_identifier:4624 AND logon_type:3", snapshot.QueryString)

	filter, err := service.ParseQueryFilter(snapshot.QueryFilter)
	require.NoError(t, err)
	assert.Equal(t, []string{service.AllIndices}, filter.Indices)
	assert.Equal(t, 25, filter.Size)

	require.NotNil(t, created)
	require.NotNil(t, created.SearchTemplateID)
	assert.Equal(t, newTemplateID, *created.SearchTemplateID,
		"the view points at the spawned template, not the source")
}

func TestGetViewStateViewOfAnotherUserIsDenied(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	viewID := uuid.New()

	views := &fakeViewStorage{
		getViewFn: func(_ context.Context, _, _ uuid.UUID) (*service.View, error) {
			return &service.View{
				ID:     viewID,
				Name:   "",
				User:   &service.User{ID: uuid.New(), Username: "someone-else"},
				Status: service.EntityStatusActive,
			}, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, &fakeSearchTemplateStorage{})

	_, err := svc.GetView(context.Background(), user, sketchID, viewID)
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.Unauthorized, err))
}

func TestGetViewDeletedReturnsMetaOnly(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	viewID := uuid.New()

	views := &fakeViewStorage{
		getViewFn: func(_ context.Context, _, _ uuid.UUID) (*service.View, error) {
			return &service.View{
				ID:     viewID,
				Name:   "gone fishing",
				User:   user,
				Status: service.EntityStatusDeleted,
			}, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, &fakeSearchTemplateStorage{})

	envelope, err := svc.GetView(context.Background(), user, sketchID, viewID)
	require.NoError(t, err)

	assert.True(t, envelope.Meta.Deleted)
	assert.Equal(t, "gone fishing", envelope.Meta.Name)
	assert.Empty(t, envelope.Objects)
	assert.NotNil(t, envelope.Objects)
}

func TestGetViewNormalizesStoredFilter(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	viewID := uuid.New()

	var persisted *service.ViewUpdate

	views := &fakeViewStorage{
		getViewFn: func(_ context.Context, _, _ uuid.UUID) (*service.View, error) {
			return &service.View{
				ID:   viewID,
				Name: "bare filter",
				User: user,
				// A filter saved by an old client, missing
				// size, order and the events list.
				QueryFilter: json.RawMessage(`{"indices": ["idx-1"]}`),
				Status:      service.EntityStatusActive,
			}, nil
		},
		updateViewFn: func(_ context.Context, _, _ uuid.UUID, name string, update *service.ViewUpdate) (*service.View, error) {
			persisted = update
			return &service.View{ID: viewID, Name: name, User: user, QueryFilter: update.QueryFilter}, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, &fakeSearchTemplateStorage{})

	envelope, err := svc.GetView(context.Background(), user, sketchID, viewID)
	require.NoError(t, err)
	require.Len(t, envelope.Objects, 1)

	require.NotNil(t, persisted, "the completed filter must be written back")

	filter, err := service.ParseQueryFilter(persisted.QueryFilter)
	require.NoError(t, err)
	assert.Equal(t, []string{"idx-1"}, filter.Indices)
	assert.Equal(t, 40, filter.Size)
	assert.Equal(t, "asc", filter.Order)
	assert.NotNil(t, filter.Events)
}

func TestUpdateViewKeepsNameAndDSLReplacesQuery(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()
	viewID := uuid.New()

	var updatedName string
	var updated *service.ViewUpdate

	views := &fakeViewStorage{
		getViewFn: func(_ context.Context, _, _ uuid.UUID) (*service.View, error) {
			return &service.View{ID: viewID, Name: "original name", User: user, Status: service.EntityStatusActive}, nil
		},
		updateViewFn: func(_ context.Context, _, _ uuid.UUID, name string, update *service.ViewUpdate) (*service.View, error) {
			updatedName = name
			updated = update
			return &service.View{ID: viewID, Name: name, User: user}, nil
		},
	}

	svc := core.NewViewService(openSketchStorage(), views, &fakeSearchTemplateStorage{})

	_, err := svc.UpdateView(context.Background(), user, sketchID, viewID, &service.SaveViewRequest{
		Query: "this query loses against the dsl",
		DSL:   json.RawMessage(`{"query": {"match_all": {}}}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "original name", updatedName)
	require.NotNil(t, updated)
	assert.Empty(t, updated.QueryString)
	assert.JSONEq(t, `{"query": {"match_all": {}}}`, string(updated.QueryDSL))
}

func TestDeleteViewRequiresWritePermission(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}

	sketches := openSketchStorage()
	sketches.hasPermissionFn = func(_ context.Context, _, _ uuid.UUID, permission service.Permission) (bool, error) {
		require.Equal(t, service.PermissionWrite, permission)
		return false, nil
	}

	svc := core.NewViewService(sketches, &fakeViewStorage{}, &fakeSearchTemplateStorage{})

	err := svc.DeleteView(context.Background(), user, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.Unauthorized, err))
}
