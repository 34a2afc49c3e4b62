package core

import (
	"context"
	"time"

	"github.com/caseboard/caseboard-backend/pkg/config"
	"github.com/caseboard/caseboard-backend/pkg/errs"
	"github.com/caseboard/caseboard-backend/pkg/service"
)

var _ service.TaskService = &taskService{}

type taskService struct {
	cfg                config.Upload
	searchIndexStorage service.SearchIndexStorage
	taskQueueAPI       service.TaskQueueAPI
}

func (s *taskService) ListTasks(ctx context.Context, user *service.User) (*service.Envelope[service.EmptyMeta, *service.TaskStatus], error) {
	const op errs.Op = "taskService.ListTasks"

	indices, err := s.searchIndexStorage.ListProcessingSearchIndices(ctx, user.ID)
	if err != nil {
		return nil, errs.E(op, err)
	}

	timeout := time.Duration(s.cfg.IngestTimeoutSeconds) * time.Second
	tasks := make([]*service.TaskStatus, 0, len(indices))

	for _, index := range indices {
		status, err := s.taskQueueAPI.GetJobStatus(ctx, index.IndexName)
		if err != nil {
			return nil, errs.E(op, err)
		}

		switch {
		case status.State == service.JobStateCompleted:
			err = s.searchIndexStorage.SetSearchIndexStatus(ctx, index.ID, service.IndexStatusReady)
			if err != nil {
				return nil, errs.E(op, err)
			}
		case status.State == service.JobStatePending && time.Since(index.UpdatedAt) > timeout:
			// A job the queue no longer knows about never leaves
			// pending on its own. Give up on the index after the
			// configured grace period.
			err = s.searchIndexStorage.SetSearchIndexStatus(ctx, index.ID, service.IndexStatusTimeout)
			if err != nil {
				return nil, errs.E(op, err)
			}
		}

		tasks = append(tasks, &service.TaskStatus{
			TaskID:     index.IndexName,
			State:      status.State,
			Successful: status.State == service.JobStateCompleted,
			Name:       index.Name,
			Result:     status.Result,
		})
	}

	return service.NewEnvelope(service.EmptyMeta{}, tasks), nil
}

func NewTaskService(
	cfg config.Upload,
	searchIndexStorage service.SearchIndexStorage,
	taskQueueAPI service.TaskQueueAPI,
) *taskService {
	return &taskService{
		cfg:                cfg,
		searchIndexStorage: searchIndexStorage,
		taskQueueAPI:       taskQueueAPI,
	}
}
