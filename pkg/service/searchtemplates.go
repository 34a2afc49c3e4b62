package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SearchTemplateStorage interface {
	GetSearchTemplate(ctx context.Context, id uuid.UUID) (*SearchTemplate, error)
	ListSearchTemplates(ctx context.Context) ([]*SearchTemplate, error)
	CreateSearchTemplate(ctx context.Context, newTemplate *NewSearchTemplate) (*SearchTemplate, error)
}

type SearchTemplateService interface {
	GetSearchTemplate(ctx context.Context, id uuid.UUID) (*Envelope[EmptyMeta, *SearchTemplate], error)
	ListSearchTemplates(ctx context.Context) (*Envelope[EmptyMeta, *SearchTemplate], error)
}

// SearchTemplate is a reusable query definition independent of any
// sketch. Views can be derived from one or snapshot into a new one.
type SearchTemplate struct {
	// id of the search template.
	ID uuid.UUID `json:"id"`
	// name of the search template.
	Name string `json:"name"`
	// user that created the template.
	User *User `json:"user"`
	// query_string of the template.
	QueryString string `json:"query_string"`
	// query_filter of the template, stored as JSON.
	QueryFilter json.RawMessage `json:"query_filter"`
	// query_dsl is the optional raw datastore query.
	QueryDSL json.RawMessage `json:"query_dsl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSearchTemplate is the storage input for creating a template.
type NewSearchTemplate struct {
	Name        string
	UserID      uuid.UUID
	QueryString string
	QueryFilter json.RawMessage
	QueryDSL    json.RawMessage
}
