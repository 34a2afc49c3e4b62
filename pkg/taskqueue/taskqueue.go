// Package taskqueue dispatches ingestion jobs to the worker fleet
// through a Redis backed queue. Jobs use the datastore index name as
// task id so their state can be looked up during status polling.
package taskqueue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

const (
	ingestionQueue = "ingestion"

	// completedRetention keeps finished tasks queryable long enough
	// for the status poller to observe the final state.
	completedRetention = 24 * time.Hour

	taskTimeout = time.Hour
)

var _ service.TaskQueueAPI = &Client{}

type Client struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	log       zerolog.Logger
}

func New(redisAddr, redisPassword string, redisDB int, log zerolog.Logger) *Client {
	opt := asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	}

	return &Client{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
		log:       log,
	}
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return err
	}

	return c.inspector.Close()
}

func (c *Client) EnqueueIngestion(ctx context.Context, job *service.IngestionJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encoding ingestion job: %w", err)
	}

	task := asynq.NewTask(job.TaskType, payload)

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(ingestionQueue),
		asynq.TaskID(job.IndexName),
		asynq.Timeout(taskTimeout),
		asynq.Retention(completedRetention),
	)
	if err != nil {
		return fmt.Errorf("enqueueing ingestion job: %w", err)
	}

	c.log.Info().
		Str("task_id", info.ID).
		Str("task_type", job.TaskType).
		Msg("enqueued ingestion job")

	return nil
}

func (c *Client) GetJobStatus(ctx context.Context, jobID string) (*service.JobStatus, error) {
	info, err := c.inspector.GetTaskInfo(ingestionQueue, jobID)
	if err != nil {
		// A job the queue no longer knows about reads as pending,
		// the timeout sweep in the task service picks it up.
		if errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
			return &service.JobStatus{
				ID:    jobID,
				State: service.JobStatePending,
			}, nil
		}

		return nil, fmt.Errorf("fetching task info: %w", err)
	}

	return &service.JobStatus{
		ID:     info.ID,
		State:  stateFromTask(info),
		Result: info.Result,
	}, nil
}

func stateFromTask(info *asynq.TaskInfo) service.JobState {
	switch info.State {
	case asynq.TaskStateActive:
		return service.JobStateActive
	case asynq.TaskStateCompleted:
		return service.JobStateCompleted
	case asynq.TaskStateArchived:
		return service.JobStateFailed
	default:
		return service.JobStatePending
	}
}
