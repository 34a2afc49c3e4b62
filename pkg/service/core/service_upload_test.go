package core_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/config"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/caseboard/caseboard-backend/pkg/service/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDisabled(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}

	indices := &fakeSearchIndexStorage{
		createSearchIndexFn: func(_ context.Context, _ *service.User, _ *service.NewSearchIndex) (*service.SearchIndex, error) {
			t.Fatal("no index must be created when uploads are disabled")
			return nil, nil
		},
	}
	queue := &fakeTaskQueueAPI{}

	svc := core.NewUploadService(config.Upload{Enabled: false}, openSketchStorage(), &fakeTimelineStorage{}, indices, queue)

	_, err := svc.Upload(context.Background(), user, &service.UploadRequest{
		Filename: "evidence.plaso",
		File:     strings.NewReader("content"),
	})
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.InvalidRequest, err))
	assert.Empty(t, queue.enqueued)
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}

	cfg := config.Upload{Enabled: true, Folder: t.TempDir()}

	indices := &fakeSearchIndexStorage{
		createSearchIndexFn: func(_ context.Context, _ *service.User, _ *service.NewSearchIndex) (*service.SearchIndex, error) {
			t.Fatal("no index must be created for a rejected file type")
			return nil, nil
		},
	}
	queue := &fakeTaskQueueAPI{}

	svc := core.NewUploadService(cfg, openSketchStorage(), &fakeTimelineStorage{}, indices, queue)

	_, err := svc.Upload(context.Background(), user, &service.UploadRequest{
		Filename: "evidence.exe",
		File:     strings.NewReader("content"),
	})
	require.Error(t, err)
	assert.True(t, errs.KindIs(errs.InvalidRequest, err))

	entries, err := os.ReadDir(cfg.Folder)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing must be written to the upload folder")
}

func TestUploadCreatesTimelineOnWritableSketch(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()

	cfg := config.Upload{Enabled: true, Folder: t.TempDir()}

	var createdIndex *service.NewSearchIndex

	index := &service.SearchIndex{ID: uuid.New(), Status: service.IndexStatusProcessing}
	indices := &fakeSearchIndexStorage{
		createSearchIndexFn: func(_ context.Context, _ *service.User, newIndex *service.NewSearchIndex) (*service.SearchIndex, error) {
			createdIndex = newIndex
			index.Name = newIndex.Name
			index.IndexName = newIndex.IndexName
			return index, nil
		},
	}
	timelines := &fakeTimelineStorage{
		createTimelineFn: func(_ context.Context, gotSketchID, searchIndexID, _ uuid.UUID, name, _ string) (*service.Timeline, error) {
			require.Equal(t, sketchID, gotSketchID)
			require.Equal(t, index.ID, searchIndexID)
			return &service.Timeline{ID: uuid.New(), Name: name, SearchIndex: index}, nil
		},
	}
	queue := &fakeTaskQueueAPI{}

	svc := core.NewUploadService(cfg, openSketchStorage(), timelines, indices, queue)

	created, err := svc.Upload(context.Background(), user, &service.UploadRequest{
		Filename: "webserver-logs.csv",
		SketchID: &sketchID,
		File:     strings.NewReader("timestamp,message\n"),
	})
	require.NoError(t, err)

	require.NotNil(t, createdIndex)
	assert.Equal(t, "webserver-logs", createdIndex.Name, "the timeline name falls back to the file name")
	assert.Equal(t, service.IndexStatusProcessing, createdIndex.Status)
	assert.Equal(t, strings.ToLower(createdIndex.IndexName), createdIndex.IndexName)

	require.Len(t, created.Objects, 1)
	require.NotNil(t, created.Objects[0].Timeline, "a writable sketch gets the timeline, not the bare index")
	assert.Nil(t, created.Objects[0].SearchIndex)

	require.Len(t, queue.enqueued, 1)
	job := queue.enqueued[0]
	assert.Equal(t, "ingestion:csv", job.TaskType)
	assert.Equal(t, createdIndex.IndexName, job.IndexName)
	assert.Equal(t, "hutch", job.Username)

	content, err := os.ReadFile(filepath.Join(cfg.Folder, createdIndex.IndexName+".csv"))
	require.NoError(t, err)
	assert.Equal(t, "timestamp,message\n", string(content))
}

func TestUploadWithoutWritePermissionReturnsBareIndex(t *testing.T) {
	user := &service.User{ID: uuid.New(), Username: "hutch"}
	sketchID := uuid.New()

	cfg := config.Upload{Enabled: true, Folder: t.TempDir()}

	sketches := openSketchStorage()
	sketches.hasPermissionFn = func(_ context.Context, _, _ uuid.UUID, _ service.Permission) (bool, error) {
		return false, nil
	}

	index := &service.SearchIndex{ID: uuid.New(), Status: service.IndexStatusProcessing}
	indices := &fakeSearchIndexStorage{
		createSearchIndexFn: func(_ context.Context, _ *service.User, newIndex *service.NewSearchIndex) (*service.SearchIndex, error) {
			index.Name = newIndex.Name
			index.IndexName = newIndex.IndexName
			return index, nil
		},
	}
	timelines := &fakeTimelineStorage{
		createTimelineFn: func(_ context.Context, _, _, _ uuid.UUID, _, _ string) (*service.Timeline, error) {
			t.Fatal("no timeline must be attached to a read only sketch")
			return nil, nil
		},
	}
	queue := &fakeTaskQueueAPI{}

	svc := core.NewUploadService(cfg, sketches, timelines, indices, queue)

	created, err := svc.Upload(context.Background(), user, &service.UploadRequest{
		Filename: "export.jsonl",
		SketchID: &sketchID,
		File:     strings.NewReader("{}\n"),
	})
	require.NoError(t, err)

	require.Len(t, created.Objects, 1)
	assert.Nil(t, created.Objects[0].Timeline)
	require.NotNil(t, created.Objects[0].SearchIndex)

	// The ingestion still runs, the caller can attach the index later.
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, "ingestion:jsonl", queue.enqueued[0].TaskType)
}
