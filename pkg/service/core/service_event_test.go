package core_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventFixture wires an event service around one sketch with one
// attached index named idx-1.
type eventFixture struct {
	index     *service.SearchIndex
	sketches  *fakeSketchStorage
	timelines *fakeTimelineStorage
	indices   *fakeSearchIndexStorage
	events    *fakeEventStorage
	search    *fakeSearchAPI
}

func newEventFixture() *eventFixture {
	index := &service.SearchIndex{
		ID:        uuid.New(),
		IndexName: "idx-1",
		Status:    service.IndexStatusReady,
	}

	return &eventFixture{
		index:    index,
		sketches: openSketchStorage(),
		timelines: &fakeTimelineStorage{
			listTimelinesFn: func(_ context.Context, _ uuid.UUID) ([]*service.Timeline, error) {
				return []*service.Timeline{{
					ID:          uuid.New(),
					Name:        "syslog",
					SearchIndex: index,
					Status:      service.EntityStatusActive,
				}}, nil
			},
		},
		indices: &fakeSearchIndexStorage{
			getByIndexNameFn: func(_ context.Context, indexName string) (*service.SearchIndex, error) {
				if indexName != index.IndexName {
					return nil, errs.E(errs.NotExist, fmt.Errorf("search index %q not found", indexName))
				}
				return index, nil
			},
		},
		events: &fakeEventStorage{},
		search: &fakeSearchAPI{},
	}
}

func (f *eventFixture) service() service.EventService {
	return core.NewEventService(f.sketches, f.timelines, f.indices, f.events, f.search)
}

func TestAnnotateLabelToggleRule(t *testing.T) {
	tests := []struct {
		name           string
		annotationType string
		annotation     string
		wantLabel      string
		wantToggle     bool
	}{
		{
			name:           "Star label toggles",
			annotationType: service.AnnotationTypeLabel,
			annotation:     service.StarLabel,
			wantLabel:      service.StarLabel,
			wantToggle:     true,
		},
		{
			name:           "Hidden label toggles",
			annotationType: service.AnnotationTypeLabel,
			annotation:     service.HiddenLabel,
			wantLabel:      service.HiddenLabel,
			wantToggle:     true,
		},
		{
			name:           "Plain label does not toggle",
			annotationType: service.AnnotationTypeLabel,
			annotation:     "suspicious",
			wantLabel:      "suspicious",
			wantToggle:     false,
		},
		{
			name:           "Comment writes the marker without toggling",
			annotationType: service.AnnotationTypeComment,
			annotation:     "this host was patient zero",
			wantLabel:      service.CommentMarkerLabel,
			wantToggle:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user := &service.User{ID: uuid.New(), Username: "hutch"}

			fixture := newEventFixture()
			fixture.events.annotateEventsFn = func(_ context.Context, _ *service.User, annotations []*service.NewAnnotation) ([]*service.Annotation, error) {
				require.Len(t, annotations, 1)
				assert.Equal(t, fixture.index.ID, annotations[0].SearchIndexID)
				assert.Equal(t, tc.annotation, annotations[0].Text)

				return []*service.Annotation{{Type: annotations[0].Type}}, nil
			}

			_, err := fixture.service().Annotate(context.Background(), user, uuid.New(), &service.AnnotateRequest{
				Annotation:     tc.annotation,
				AnnotationType: tc.annotationType,
				Events:         []service.EventRef{{Index: "idx-1", ID: "doc-1", Type: "_doc"}},
			})
			require.NoError(t, err)

			require.Len(t, fixture.search.setLabelCalls, 1)
			call := fixture.search.setLabelCalls[0]
			assert.Equal(t, "idx-1", call.IndexName)
			assert.Equal(t, "doc-1", call.EventID)
			assert.Equal(t, tc.wantLabel, call.Label)
			assert.Equal(t, tc.wantToggle, call.Toggle)
		})
	}
}

func TestAnnotateForeignIndexFailsBeforeAnyWrite(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}

	fixture := newEventFixture()
	fixture.indices.getByIndexNameFn = func(_ context.Context, indexName string) (*service.SearchIndex, error) {
		// The index exists, it just is not attached to this sketch.
		return &service.SearchIndex{ID: uuid.New(), IndexName: indexName, Status: service.IndexStatusReady}, nil
	}
	fixture.events.annotateEventsFn = func(_ context.Context, _ *service.User, _ []*service.NewAnnotation) ([]*service.Annotation, error) {
		t.Fatal("no annotation must be stored when an event reference fails validation")
		return nil, nil
	}

	_, err := fixture.service().Annotate(context.Background(), user, uuid.New(), &service.AnnotateRequest{
		Annotation:     service.StarLabel,
		AnnotationType: service.AnnotationTypeLabel,
		Events: []service.EventRef{
			{Index: "idx-of-another-sketch", ID: "doc-1", Type: "_doc"},
		},
	})
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.InvalidRequest, err))
	assert.Empty(t, fixture.search.setLabelCalls)
}

func TestAnnotateRequiresWritePermission(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}

	fixture := newEventFixture()
	fixture.sketches.hasPermissionFn = func(_ context.Context, _, _ uuid.UUID, _ service.Permission) (bool, error) {
		return false, nil
	}

	_, err := fixture.service().Annotate(context.Background(), user, uuid.New(), &service.AnnotateRequest{
		Annotation:     service.StarLabel,
		AnnotationType: service.AnnotationTypeLabel,
		Events:         []service.EventRef{{Index: "idx-1", ID: "doc-1", Type: "_doc"}},
	})
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.Unauthorized, err))
}

func TestGetEventWithoutShadowHasEmptyComments(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}

	fixture := newEventFixture()
	fixture.search.getEventFn = func(_ context.Context, indexName, eventID string) (map[string]any, error) {
		require.Equal(t, "idx-1", indexName)
		require.Equal(t, "doc-1", eventID)

		return map[string]any{"message": "sshd session opened"}, nil
	}
	fixture.events.getEventByDocumentFn = func(_ context.Context, _, _ uuid.UUID, _ string) (*service.Event, error) {
		return nil, errs.E(errs.NotExist, fmt.Errorf("event not found"))
	}

	envelope, err := fixture.service().GetEvent(context.Background(), user, uuid.New(), &service.EventRequest{
		SearchIndexID: "idx-1",
		EventID:       "doc-1",
	})
	require.NoError(t, err)

	require.Len(t, envelope.Objects, 1)
	assert.Equal(t, "sshd session opened", envelope.Objects[0]["message"])
	assert.NotNil(t, envelope.Meta.Comments)
	assert.Empty(t, envelope.Meta.Comments)
}

func TestGetEventReturnsCommentTrail(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	eventID := uuid.New()

	fixture := newEventFixture()
	fixture.search.getEventFn = func(_ context.Context, _, _ string) (map[string]any, error) {
		return map[string]any{"message": "sshd session opened"}, nil
	}
	fixture.events.getEventByDocumentFn = func(_ context.Context, _, searchIndexID uuid.UUID, documentID string) (*service.Event, error) {
		require.Equal(t, fixture.index.ID, searchIndexID)
		require.Equal(t, "doc-1", documentID)

		return &service.Event{ID: eventID, DocumentID: documentID}, nil
	}
	fixture.events.listEventCommentsFn = func(_ context.Context, id uuid.UUID) ([]*service.Comment, error) {
		require.Equal(t, eventID, id)

		return []*service.Comment{{Comment: "patient zero", User: user}}, nil
	}

	envelope, err := fixture.service().GetEvent(context.Background(), user, uuid.New(), &service.EventRequest{
		SearchIndexID: "idx-1",
		EventID:       "doc-1",
	})
	require.NoError(t, err)

	require.Len(t, envelope.Meta.Comments, 1)
	assert.Equal(t, "patient zero", envelope.Meta.Comments[0].Comment)
}
