package core_test

import (
	"context"
	"encoding/json"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/uuid"
)

// The fakes embed their interface so only the methods a test cares
// about need stubbing. Calling an unstubbed method panics, which is
// exactly what we want from a test double.

type fakeSketchStorage struct {
	service.SketchStorage

	getSketchFn     func(ctx context.Context, userID, id uuid.UUID) (*service.Sketch, error)
	listSketchesFn  func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*service.Sketch, int64, error)
	hasPermissionFn func(ctx context.Context, userID, sketchID uuid.UUID, permission service.Permission) (bool, error)
}

func (f *fakeSketchStorage) GetSketch(ctx context.Context, userID, id uuid.UUID) (*service.Sketch, error) {
	return f.getSketchFn(ctx, userID, id)
}

func (f *fakeSketchStorage) ListSketches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*service.Sketch, int64, error) {
	return f.listSketchesFn(ctx, userID, limit, offset)
}

func (f *fakeSketchStorage) HasPermission(ctx context.Context, userID, sketchID uuid.UUID, permission service.Permission) (bool, error) {
	return f.hasPermissionFn(ctx, userID, sketchID, permission)
}

type fakeTimelineStorage struct {
	service.TimelineStorage

	listTimelinesFn  func(ctx context.Context, sketchID uuid.UUID) ([]*service.Timeline, error)
	createTimelineFn func(ctx context.Context, sketchID, searchIndexID, userID uuid.UUID, name, description string) (*service.Timeline, error)
}

func (f *fakeTimelineStorage) ListTimelines(ctx context.Context, sketchID uuid.UUID) ([]*service.Timeline, error) {
	return f.listTimelinesFn(ctx, sketchID)
}

func (f *fakeTimelineStorage) CreateTimeline(ctx context.Context, sketchID, searchIndexID, userID uuid.UUID, name, description string) (*service.Timeline, error) {
	return f.createTimelineFn(ctx, sketchID, searchIndexID, userID, name, description)
}

type fakeViewStorage struct {
	service.ViewStorage

	getViewFn         func(ctx context.Context, sketchID, id uuid.UUID) (*service.View, error)
	listNamedViewsFn  func(ctx context.Context, sketchID uuid.UUID) ([]*service.View, error)
	createViewFn      func(ctx context.Context, newView *service.NewView) (*service.View, error)
	updateViewFn      func(ctx context.Context, sketchID, id uuid.UUID, name string, update *service.ViewUpdate) (*service.View, error)
	upsertStateViewFn func(ctx context.Context, sketchID, userID uuid.UUID, update *service.ViewUpdate) (*service.View, error)
}

func (f *fakeViewStorage) GetView(ctx context.Context, sketchID, id uuid.UUID) (*service.View, error) {
	return f.getViewFn(ctx, sketchID, id)
}

func (f *fakeViewStorage) ListNamedViews(ctx context.Context, sketchID uuid.UUID) ([]*service.View, error) {
	return f.listNamedViewsFn(ctx, sketchID)
}

func (f *fakeViewStorage) CreateView(ctx context.Context, newView *service.NewView) (*service.View, error) {
	return f.createViewFn(ctx, newView)
}

func (f *fakeViewStorage) UpdateView(ctx context.Context, sketchID, id uuid.UUID, name string, update *service.ViewUpdate) (*service.View, error) {
	return f.updateViewFn(ctx, sketchID, id, name, update)
}

func (f *fakeViewStorage) UpsertStateView(ctx context.Context, sketchID, userID uuid.UUID, update *service.ViewUpdate) (*service.View, error) {
	return f.upsertStateViewFn(ctx, sketchID, userID, update)
}

type fakeSearchTemplateStorage struct {
	service.SearchTemplateStorage

	getSearchTemplateFn    func(ctx context.Context, id uuid.UUID) (*service.SearchTemplate, error)
	listSearchTemplatesFn  func(ctx context.Context) ([]*service.SearchTemplate, error)
	createSearchTemplateFn func(ctx context.Context, newTemplate *service.NewSearchTemplate) (*service.SearchTemplate, error)
}

func (f *fakeSearchTemplateStorage) ListSearchTemplates(ctx context.Context) ([]*service.SearchTemplate, error) {
	return f.listSearchTemplatesFn(ctx)
}

func (f *fakeSearchTemplateStorage) GetSearchTemplate(ctx context.Context, id uuid.UUID) (*service.SearchTemplate, error) {
	return f.getSearchTemplateFn(ctx, id)
}

func (f *fakeSearchTemplateStorage) CreateSearchTemplate(ctx context.Context, newTemplate *service.NewSearchTemplate) (*service.SearchTemplate, error) {
	return f.createSearchTemplateFn(ctx, newTemplate)
}

type fakeSearchIndexStorage struct {
	service.SearchIndexStorage

	getByIndexNameFn       func(ctx context.Context, indexName string) (*service.SearchIndex, error)
	listReadableFn         func(ctx context.Context, userID uuid.UUID) ([]*service.SearchIndex, error)
	listProcessingFn       func(ctx context.Context, userID uuid.UUID) ([]*service.SearchIndex, error)
	createSearchIndexFn    func(ctx context.Context, creator *service.User, newIndex *service.NewSearchIndex) (*service.SearchIndex, error)
	setSearchIndexStatusFn func(ctx context.Context, id uuid.UUID, status service.IndexStatus) error
}

func (f *fakeSearchIndexStorage) GetSearchIndexByIndexName(ctx context.Context, indexName string) (*service.SearchIndex, error) {
	return f.getByIndexNameFn(ctx, indexName)
}

func (f *fakeSearchIndexStorage) ListReadableSearchIndices(ctx context.Context, userID uuid.UUID) ([]*service.SearchIndex, error) {
	return f.listReadableFn(ctx, userID)
}

func (f *fakeSearchIndexStorage) ListProcessingSearchIndices(ctx context.Context, userID uuid.UUID) ([]*service.SearchIndex, error) {
	return f.listProcessingFn(ctx, userID)
}

func (f *fakeSearchIndexStorage) CreateSearchIndex(ctx context.Context, creator *service.User, newIndex *service.NewSearchIndex) (*service.SearchIndex, error) {
	return f.createSearchIndexFn(ctx, creator, newIndex)
}

func (f *fakeSearchIndexStorage) SetSearchIndexStatus(ctx context.Context, id uuid.UUID, status service.IndexStatus) error {
	return f.setSearchIndexStatusFn(ctx, id, status)
}

type fakeEventStorage struct {
	service.EventStorage

	annotateEventsFn     func(ctx context.Context, user *service.User, annotations []*service.NewAnnotation) ([]*service.Annotation, error)
	getEventByDocumentFn func(ctx context.Context, sketchID, searchIndexID uuid.UUID, documentID string) (*service.Event, error)
	listEventCommentsFn  func(ctx context.Context, eventID uuid.UUID) ([]*service.Comment, error)
}

func (f *fakeEventStorage) AnnotateEvents(ctx context.Context, user *service.User, annotations []*service.NewAnnotation) ([]*service.Annotation, error) {
	return f.annotateEventsFn(ctx, user, annotations)
}

func (f *fakeEventStorage) GetEventByDocument(ctx context.Context, sketchID, searchIndexID uuid.UUID, documentID string) (*service.Event, error) {
	return f.getEventByDocumentFn(ctx, sketchID, searchIndexID, documentID)
}

func (f *fakeEventStorage) ListEventComments(ctx context.Context, eventID uuid.UUID) ([]*service.Comment, error) {
	return f.listEventCommentsFn(ctx, eventID)
}

type setLabelCall struct {
	IndexName string
	EventID   string
	Label     string
	Toggle    bool
}

type fakeSearchAPI struct {
	service.SearchAPI

	searchFn   func(ctx context.Context, sketchID uuid.UUID, query string, filter service.QueryFilter, dsl json.RawMessage, indices []string) (*service.SearchResult, error)
	countFn    func(ctx context.Context, indices []string) (int64, error)
	getEventFn func(ctx context.Context, indexName, eventID string) (map[string]any, error)

	setLabelCalls []setLabelCall
}

func (f *fakeSearchAPI) GetEvent(ctx context.Context, indexName, eventID string) (map[string]any, error) {
	return f.getEventFn(ctx, indexName, eventID)
}

func (f *fakeSearchAPI) Search(ctx context.Context, sketchID uuid.UUID, query string, filter service.QueryFilter, dsl json.RawMessage, indices []string) (*service.SearchResult, error) {
	return f.searchFn(ctx, sketchID, query, filter, dsl, indices)
}

func (f *fakeSearchAPI) Count(ctx context.Context, indices []string) (int64, error) {
	return f.countFn(ctx, indices)
}

func (f *fakeSearchAPI) SetLabel(_ context.Context, indexName, eventID, _ string, _, _ uuid.UUID, label string, toggle bool) error {
	f.setLabelCalls = append(f.setLabelCalls, setLabelCall{
		IndexName: indexName,
		EventID:   eventID,
		Label:     label,
		Toggle:    toggle,
	})

	return nil
}

type fakeTaskQueueAPI struct {
	service.TaskQueueAPI

	enqueued       []*service.IngestionJob
	getJobStatusFn func(ctx context.Context, jobID string) (*service.JobStatus, error)
}

func (f *fakeTaskQueueAPI) EnqueueIngestion(_ context.Context, job *service.IngestionJob) error {
	f.enqueued = append(f.enqueued, job)
	return nil
}

func (f *fakeTaskQueueAPI) GetJobStatus(ctx context.Context, jobID string) (*service.JobStatus, error) {
	return f.getJobStatusFn(ctx, jobID)
}
