package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TimelineStorage interface {
	GetTimeline(ctx context.Context, id uuid.UUID) (*Timeline, error)
	ListTimelines(ctx context.Context, sketchID uuid.UUID) ([]*Timeline, error)
	CreateTimeline(ctx context.Context, sketchID, searchIndexID, userID uuid.UUID, name, description string) (*Timeline, error)
	SetTimelineStatus(ctx context.Context, id uuid.UUID, status EntityStatus) error
}

type TimelineService interface {
	ListTimelines(ctx context.Context, user *User, sketchID uuid.UUID) (*Envelope[EmptyMeta, *Timeline], error)
	GetTimeline(ctx context.Context, user *User, sketchID, timelineID uuid.UUID) (*Envelope[EmptyMeta, *Timeline], error)
	DeleteTimeline(ctx context.Context, user *User, sketchID, timelineID uuid.UUID) error
}

// Timeline binds a sketch to one search index under a display name
// and color.
type Timeline struct {
	// id of the timeline.
	ID uuid.UUID `json:"id"`
	// name of the timeline.
	Name string `json:"name"`
	// description of the timeline.
	Description string `json:"description"`
	// color used when rendering events from this timeline.
	Color string `json:"color"`
	// user that attached the timeline.
	User *User `json:"user"`
	// searchindex backing the timeline.
	SearchIndex *SearchIndex `json:"searchindex"`
	// status of the timeline.
	Status EntityStatus `json:"status"`

	SketchID uuid.UUID `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
