package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
)

// TaskQueueAPI is the narrow contract against the task queue that
// executes ingestion jobs. Jobs are addressed by the generated index
// name so status polling can find them without extra bookkeeping.
type TaskQueueAPI interface {
	EnqueueIngestion(ctx context.Context, job *IngestionJob) error
	GetJobStatus(ctx context.Context, jobID string) (*JobStatus, error)
}

type UploadService interface {
	Upload(ctx context.Context, user *User, in *UploadRequest) (*Created[EmptyMeta, *UploadResult], error)
}

type TaskService interface {
	ListTasks(ctx context.Context, user *User) (*Envelope[EmptyMeta, *TaskStatus], error)
}

// IngestionTasks maps an upload file extension to the ingestion task
// kind that can process it. Extensions without a mapping are rejected
// before anything is created or dispatched.
var IngestionTasks = map[string]string{
	"plaso": "ingestion:plaso",
	"csv":   "ingestion:csv",
	"jsonl": "ingestion:jsonl",
}

// UploadRequest is the parsed multipart upload form.
type UploadRequest struct {
	// Filename is the client supplied name, used only to derive the
	// file extension and a fallback timeline name.
	Filename string
	// Name is the optional display name for the timeline.
	Name string
	// SketchID optionally attaches the new timeline to a sketch.
	SketchID *uuid.UUID
	// File is the uploaded content.
	File io.Reader
}

// UploadResult is either the created timeline or, when no sketch was
// targeted or writable, the bare search index.
type UploadResult struct {
	Timeline    *Timeline    `json:"timeline,omitempty"`
	SearchIndex *SearchIndex `json:"searchindex,omitempty"`
}

// IngestionJob is the payload handed to the task queue.
type IngestionJob struct {
	// TaskType selects the ingestion algorithm.
	TaskType string `json:"-"`
	FilePath string `json:"file_path"`
	// TimelineName is the display name for the ingested timeline.
	TimelineName string `json:"timeline_name"`
	// IndexName is the datastore index to write into, and the job id.
	IndexName string `json:"index_name"`
	Username  string `json:"username"`
}

// JobState is the queue reported state of an ingestion job.
type JobState string

const (
	JobStatePending   JobState = "PENDING"
	JobStateActive    JobState = "STARTED"
	JobStateCompleted JobState = "SUCCESS"
	JobStateFailed    JobState = "FAILURE"
)

// JobStatus is the queue reported status of one job.
type JobStatus struct {
	ID     string          `json:"task_id"`
	State  JobState        `json:"state"`
	Result json.RawMessage `json:"result"`
}

// TaskStatus is one entry of the task polling response.
type TaskStatus struct {
	TaskID     string          `json:"task_id"`
	State      JobState        `json:"state"`
	Successful bool            `json:"successful"`
	// Name is the display name of the search index being ingested.
	Name   string          `json:"name"`
	Result json.RawMessage `json:"result"`
}
