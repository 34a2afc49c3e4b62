package service

import (
	"context"
	"encoding/json"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type ViewStorage interface {
	// GetView resolves a view inside its sketch: a view id from
	// another sketch is reported as not found.
	GetView(ctx context.Context, sketchID, id uuid.UUID) (*View, error)
	// ListNamedViews returns the non-deleted views of the sketch
	// with a non-empty name; the per-user state views are excluded.
	ListNamedViews(ctx context.Context, sketchID uuid.UUID) ([]*View, error)
	CreateView(ctx context.Context, newView *NewView) (*View, error)
	UpdateView(ctx context.Context, sketchID, id uuid.UUID, name string, update *ViewUpdate) (*View, error)
	// UpsertStateView atomically creates or refreshes the single
	// unnamed "last search state" view of (sketch, user).
	UpsertStateView(ctx context.Context, sketchID, userID uuid.UUID, update *ViewUpdate) (*View, error)
	SetViewStatus(ctx context.Context, sketchID, id uuid.UUID, status EntityStatus) error
}

type ViewService interface {
	ListViews(ctx context.Context, user *User, sketchID uuid.UUID) (*Envelope[EmptyMeta, *View], error)
	CreateView(ctx context.Context, user *User, sketchID uuid.UUID, in *SaveViewRequest) (*Created[EmptyMeta, *View], error)
	GetView(ctx context.Context, user *User, sketchID, viewID uuid.UUID) (*Envelope[ViewMeta, *View], error)
	UpdateView(ctx context.Context, user *User, sketchID, viewID uuid.UUID, in *SaveViewRequest) (*Created[EmptyMeta, *View], error)
	DeleteView(ctx context.Context, user *User, sketchID, viewID uuid.UUID) error
}

// View is a saved search scoped to a sketch and a user. A view with
// an empty name is the transient "last search state" record, one per
// sketch and user.
type View struct {
	// id of the view.
	ID uuid.UUID `json:"id"`
	// name of the view, empty for state views.
	Name string `json:"name"`
	// user that owns the view.
	User *User `json:"user"`
	// query_string of the saved search.
	QueryString string `json:"query_string"`
	// query_filter of the saved search, stored as JSON.
	QueryFilter json.RawMessage `json:"query_filter"`
	// query_dsl is the optional raw datastore query.
	QueryDSL json.RawMessage `json:"query_dsl"`
	// searchtemplate the view was derived from or spawned, if any.
	SearchTemplate *SearchTemplate `json:"searchtemplate"`
	// status of the view.
	Status EntityStatus `json:"status"`

	SketchID uuid.UUID `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveViewRequest is the request body for creating or updating a
// view.
type SaveViewRequest struct {
	// name of the view.
	Name string `json:"name"`
	// query string of the search to save.
	Query string `json:"query"`
	// filter is the structured part of the search.
	Filter QueryFilter `json:"filter"`
	// dsl is the optional raw datastore query.
	DSL json.RawMessage `json:"dsl"`
	// from_searchtemplate_id derives the view from an existing
	// search template, discarding the submitted name/query/filter.
	FromSearchTemplateID *uuid.UUID `json:"from_searchtemplate_id"`
	// new_searchtemplate snapshots the resulting view as a new,
	// sketch independent search template.
	NewSearchTemplate bool `json:"new_searchtemplate"`
}

func (r SaveViewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.When(r.FromSearchTemplateID == nil)),
	)
}

// NewView is the storage input for creating a view.
type NewView struct {
	Name             string
	SketchID         uuid.UUID
	UserID           uuid.UUID
	QueryString      string
	QueryFilter      json.RawMessage
	QueryDSL         json.RawMessage
	SearchTemplateID *uuid.UUID
}

// ViewUpdate is the storage input for updating a view in place.
type ViewUpdate struct {
	QueryString string
	QueryFilter json.RawMessage
	QueryDSL    json.RawMessage
}

// ViewMeta flags a soft deleted view: the response then carries the
// metadata only and an empty object list.
type ViewMeta struct {
	Deleted bool   `json:"deleted,omitempty"`
	Name    string `json:"name,omitempty"`
}
