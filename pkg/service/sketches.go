package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type SketchStorage interface {
	// GetSketch resolves the sketch through the ACL of the acting
	// user: a sketch the user cannot read is reported as not found.
	GetSketch(ctx context.Context, userID, id uuid.UUID) (*Sketch, error)
	ListSketches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Sketch, int64, error)
	CreateSketch(ctx context.Context, creator *User, newSketch *NewSketch) (*Sketch, error)
	HasPermission(ctx context.Context, userID, sketchID uuid.UUID, permission Permission) (bool, error)
	SetSketchStatus(ctx context.Context, id uuid.UUID, status EntityStatus) error
}

type SketchService interface {
	ListSketches(ctx context.Context, user *User, page, size int) (*Envelope[SketchListMeta, *Sketch], error)
	CreateSketch(ctx context.Context, user *User, newSketch *NewSketch) (*Created[EmptyMeta, *Sketch], error)
	GetSketch(ctx context.Context, user *User, id uuid.UUID) (*Envelope[SketchMeta, *Sketch], error)
	AttachTimelines(ctx context.Context, user *User, sketchID uuid.UUID, in *AttachTimelinesRequest) (*Created[EmptyMeta, *Sketch], error)
}

// Sketch is an investigation workspace grouping timelines, views and
// stories.
type Sketch struct {
	// id of the sketch.
	ID uuid.UUID `json:"id"`
	// name of the sketch.
	Name string `json:"name"`
	// description of the sketch.
	Description string `json:"description"`
	// user that created the sketch.
	User *User `json:"user"`
	// timelines attached to the sketch, with their search indices.
	Timelines []*Timeline `json:"timelines"`
	// status of the sketch.
	Status EntityStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSketch is the request body for creating a sketch.
type NewSketch struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s NewSketch) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
	)
}

// AttachTimelinesRequest attaches timelines built from existing
// search indices to a sketch.
type AttachTimelinesRequest struct {
	// timelines is a list of search index ids.
	Timelines []uuid.UUID `json:"timelines"`
}

func (r AttachTimelinesRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Timelines, validation.Required),
	)
}

// SketchListMeta is the pagination metadata of the sketch list.
type SketchListMeta struct {
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
	Offset   int  `json:"offset"`
	Limit    int  `json:"limit"`
}

// SketchMeta carries the named views of the sketch and every known
// search template, so clients can offer both as starting points.
type SketchMeta struct {
	Views           []NamedRef `json:"views"`
	SearchTemplates []NamedRef `json:"searchtemplates"`
}

// NamedRef is an id/name pair used in metadata listings.
type NamedRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
