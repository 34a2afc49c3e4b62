package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type StoryStorage interface {
	// GetStory resolves a story inside its sketch: a story id from
	// another sketch is reported as not found.
	GetStory(ctx context.Context, sketchID, id uuid.UUID) (*Story, error)
	// ListStories returns the stories of the sketch, newest first.
	ListStories(ctx context.Context, sketchID uuid.UUID) ([]*Story, error)
	CreateStory(ctx context.Context, sketchID, userID uuid.UUID, title, content string) (*Story, error)
	UpdateStory(ctx context.Context, sketchID, id uuid.UUID, title, content string) (*Story, error)
}

type StoryService interface {
	ListStories(ctx context.Context, user *User, sketchID uuid.UUID) (*Envelope[EmptyMeta, *Story], error)
	CreateStory(ctx context.Context, user *User, sketchID uuid.UUID) (*Created[EmptyMeta, *Story], error)
	GetStory(ctx context.Context, user *User, sketchID, storyID uuid.UUID) (*Envelope[StoryMeta, *Story], error)
	UpdateStory(ctx context.Context, user *User, sketchID, storyID uuid.UUID, in *UpdateStoryRequest) (*Created[EmptyMeta, *Story], error)
}

// Story is a narrative report scoped to a sketch and authored by one
// user.
type Story struct {
	// id of the story.
	ID uuid.UUID `json:"id"`
	// title of the story.
	Title string `json:"title"`
	// content of the story.
	Content string `json:"content"`
	// user that authored the story.
	User *User `json:"user"`

	SketchID uuid.UUID `json:"-"`
	UserID   uuid.UUID `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateStoryRequest is the request body for updating a story.
type UpdateStoryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r UpdateStoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
	)
}

// StoryMeta tells the client whether the acting user may edit the
// story. Only the author can, until collaborative editing exists.
type StoryMeta struct {
	IsEditable bool `json:"is_editable"`
}
