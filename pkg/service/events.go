package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Marker labels mirrored into the search datastore. Star and hidden
// toggle on repeated application, the comment marker does not.
const (
	CommentMarkerLabel = "__ts_comment"
	StarLabel          = "__ts_star"
	HiddenLabel        = "__ts_hidden"
)

// Annotation types accepted by the annotate endpoint.
const (
	AnnotationTypeComment = "comment"
	AnnotationTypeLabel   = "label"
)

type EventStorage interface {
	GetEventByDocument(ctx context.Context, sketchID, searchIndexID uuid.UUID, documentID string) (*Event, error)
	// AnnotateEvents applies every annotation in one transaction:
	// event shadows are upserted atomically and a failure on any
	// event rolls back the whole batch.
	AnnotateEvents(ctx context.Context, user *User, annotations []*NewAnnotation) ([]*Annotation, error)
	ListEventComments(ctx context.Context, eventID uuid.UUID) ([]*Comment, error)
}

type EventService interface {
	GetEvent(ctx context.Context, user *User, sketchID uuid.UUID, in *EventRequest) (*Envelope[EventMeta, map[string]any], error)
	Annotate(ctx context.Context, user *User, sketchID uuid.UUID, in *AnnotateRequest) (*Created[EmptyMeta, *Annotation], error)
}

// Event is the database side shadow of a search datastore document,
// created lazily when the first annotation is attached to it.
type Event struct {
	ID            uuid.UUID `json:"id"`
	SketchID      uuid.UUID `json:"-"`
	SearchIndexID uuid.UUID `json:"-"`
	// document_id of the event in the search datastore.
	DocumentID string `json:"document_id"`
	// document_type of the event in the search datastore.
	DocumentType string `json:"document_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is a user comment attached to an event.
type Comment struct {
	// comment text.
	Comment string `json:"comment"`
	// user that wrote the comment.
	User *User `json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label is a shared label value attached to events. The same label
// row is reused across events and sketches.
type Label struct {
	// name of the label.
	Name string `json:"name"`
	// user that first created the label.
	User *User `json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Annotation is the tagged result of one annotate operation: exactly
// one of comment or label is set, named by type.
type Annotation struct {
	Type    string   `json:"type"`
	Comment *Comment `json:"comment,omitempty"`
	Label   *Label   `json:"label,omitempty"`
}

// EventRef identifies one datastore document in an annotate request.
type EventRef struct {
	Index string `json:"_index"`
	ID    string `json:"_id"`
	Type  string `json:"_type"`
}

func (r EventRef) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Index, validation.Required),
		validation.Field(&r.ID, validation.Required),
	)
}

// AnnotateRequest attaches a comment or label to a list of events.
type AnnotateRequest struct {
	Annotation     string     `json:"annotation"`
	AnnotationType string     `json:"annotation_type"`
	Events         []EventRef `json:"events"`
}

func (r AnnotateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Annotation, validation.Required),
		validation.Field(&r.AnnotationType, validation.Required,
			validation.In(AnnotationTypeComment, AnnotationTypeLabel)),
		validation.Field(&r.Events, validation.Required),
	)
}

// NewAnnotation is the storage input for one event annotation,
// produced by the event service after index ownership checks.
type NewAnnotation struct {
	SketchID      uuid.UUID
	SearchIndexID uuid.UUID
	DocumentID    string
	DocumentType  string
	Type          string
	Text          string
}

// EventRequest fetches one event with its comments.
type EventRequest struct {
	// searchindex_id is the datastore index name.
	SearchIndexID string `json:"searchindex_id"`
	// event_id is the datastore document id.
	EventID string `json:"event_id"`
}

func (r EventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SearchIndexID, validation.Required),
		validation.Field(&r.EventID, validation.Required),
	)
}

// EventMeta carries the comments attached to the fetched event.
type EventMeta struct {
	Comments []*Comment `json:"comments"`
}
