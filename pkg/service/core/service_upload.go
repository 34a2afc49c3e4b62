package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caseboard/caseboard-backend/pkg/config"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/lithammer/shortuuid/v4"
)

var _ service.UploadService = &uploadService{}

type uploadService struct {
	cfg                config.Upload
	sketchStorage      service.SketchStorage
	timelineStorage    service.TimelineStorage
	searchIndexStorage service.SearchIndexStorage
	taskQueueAPI       service.TaskQueueAPI
}

func (s *uploadService) Upload(ctx context.Context, user *service.User, in *service.UploadRequest) (*service.Created[service.EmptyMeta, *service.UploadResult], error) {
	const op errs.Op = "uploadService.Upload"

	if !s.cfg.Enabled {
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("uploads are disabled"))
	}

	// The extension decides which ingestion task can process the
	// file. Unknown extensions fail before anything is created.
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.Filename), "."))
	taskType, ok := service.IngestionTasks[extension]
	if !ok {
		return nil, errs.E(errs.InvalidRequest, op, fmt.Errorf("unsupported file extension %q", extension))
	}

	timelineName := in.Name
	if timelineName == "" {
		timelineName = strings.TrimSuffix(filepath.Base(in.Filename), filepath.Ext(in.Filename))
	}

	// The index name doubles as the ingestion job id and as the
	// opaque name of the stored upload.
	indexName := strings.ToLower(shortuuid.New())

	filePath := filepath.Join(s.cfg.Folder, indexName+"."+extension)

	file, err := os.Create(filePath)
	if err != nil {
		return nil, errs.E(errs.IO, op, fmt.Errorf("create upload file: %w", err))
	}

	_, err = io.Copy(file, in.File)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, errs.E(errs.IO, op, fmt.Errorf("store upload file: %w", err))
	}

	index, err := s.searchIndexStorage.CreateSearchIndex(ctx, user, &service.NewSearchIndex{
		Name:        timelineName,
		Description: timelineName,
		IndexName:   indexName,
		Status:      service.IndexStatusProcessing,
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	result := &service.UploadResult{SearchIndex: index}

	// The timeline is only attached when the target sketch exists
	// and the user may write to it. Otherwise the caller still gets
	// the bare search index to attach later.
	if in.SketchID != nil {
		_, err := s.sketchStorage.GetSketch(ctx, user.ID, *in.SketchID)
		if err != nil {
			return nil, errs.E(op, err)
		}

		writable, err := s.sketchStorage.HasPermission(ctx, user.ID, *in.SketchID, service.PermissionWrite)
		if err != nil {
			return nil, errs.E(op, err)
		}

		if writable {
			timeline, err := s.timelineStorage.CreateTimeline(ctx, *in.SketchID, index.ID, user.ID, timelineName, "")
			if err != nil {
				return nil, errs.E(op, err)
			}

			result = &service.UploadResult{Timeline: timeline}
		}
	}

	err = s.taskQueueAPI.EnqueueIngestion(ctx, &service.IngestionJob{
		TaskType:     taskType,
		FilePath:     filePath,
		TimelineName: timelineName,
		IndexName:    indexName,
		Username:     user.Username,
	})
	if err != nil {
		return nil, errs.E(op, err)
	}

	return service.NewCreated(service.EmptyMeta{}, []*service.UploadResult{result}), nil
}

func NewUploadService(
	cfg config.Upload,
	sketchStorage service.SketchStorage,
	timelineStorage service.TimelineStorage,
	searchIndexStorage service.SearchIndexStorage,
	taskQueueAPI service.TaskQueueAPI,
) *uploadService {
	return &uploadService{
		cfg:                cfg,
		sketchStorage:      sketchStorage,
		timelineStorage:    timelineStorage,
		searchIndexStorage: searchIndexStorage,
		taskQueueAPI:       taskQueueAPI,
	}
}
