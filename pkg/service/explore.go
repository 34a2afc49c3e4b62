package service

import (
	"context"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// DatastoreLabelField is the document field in the search datastore
// that stores labels from every sketch sharing the index. Explore
// strips it and exposes the per sketch subset under LabelField.
const (
	DatastoreLabelField = "caseboard_label"
	LabelField          = "label"
)

// SearchAPI is the narrow contract against the search datastore.
type SearchAPI interface {
	Search(ctx context.Context, sketchID uuid.UUID, query string, filter QueryFilter, dsl json.RawMessage, indices []string) (*SearchResult, error)
	// BuildQuery compiles the datastore query without executing it.
	BuildQuery(ctx context.Context, sketchID uuid.UUID, query string, filter QueryFilter, dsl json.RawMessage) (json.RawMessage, error)
	Count(ctx context.Context, indices []string) (int64, error)
	GetEvent(ctx context.Context, indexName, eventID string) (map[string]any, error)
	// SetLabel writes a label onto a document. With toggle enabled a
	// second application removes the label again, otherwise the
	// write is an idempotent set.
	SetLabel(ctx context.Context, indexName, eventID, eventType string, sketchID, userID uuid.UUID, label string, toggle bool) error
	Heatmap(ctx context.Context, p AggregationParams) ([]json.RawMessage, error)
	Histogram(ctx context.Context, p AggregationParams) ([]json.RawMessage, error)
}

// GraphAPI is the narrow contract against the graph datastore.
type GraphAPI interface {
	Search(ctx context.Context, query, outputFormat string) (*GraphResult, error)
}

type ExploreService interface {
	Explore(ctx context.Context, user *User, sketchID uuid.UUID, in *ExploreRequest) (*Envelope[ExploreMeta, *SearchEvent], error)
	Aggregate(ctx context.Context, user *User, sketchID uuid.UUID, in *AggregationRequest) (*Envelope[EmptyMeta, json.RawMessage], error)
	BuildQuery(ctx context.Context, user *User, sketchID uuid.UUID, in *ExploreRequest) (*Envelope[EmptyMeta, json.RawMessage], error)
	CountEvents(ctx context.Context, user *User, sketchID uuid.UUID) (*Envelope[CountMeta, json.RawMessage], error)
}

type GraphService interface {
	Search(ctx context.Context, user *User, sketchID uuid.UUID, in *GraphRequest) (*Envelope[EmptyMeta, *GraphResult], error)
}

// ExploreRequest is the request body of explore and query compile.
type ExploreRequest struct {
	Query  string          `json:"query"`
	Filter QueryFilter     `json:"filter"`
	DSL    json.RawMessage `json:"dsl"`
}

// HasCriterion reports whether the request selects events by at least
// one of query string, star flag, explicit events or raw query.
func (r ExploreRequest) HasCriterion() bool {
	return r.Query != "" || len(r.DSL) > 0 || r.Filter.HasCriterion()
}

// AggregationRequest selects a named aggregation algorithm.
type AggregationRequest struct {
	AggType string          `json:"aggtype"`
	Query   string          `json:"query"`
	Filter  QueryFilter     `json:"filter"`
	DSL     json.RawMessage `json:"dsl"`
}

func (r AggregationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AggType, validation.Required),
	)
}

// AggregationParams is the resolved input handed to the datastore
// side aggregators.
type AggregationParams struct {
	SketchID uuid.UUID
	Query    string
	Filter   QueryFilter
	DSL      json.RawMessage
	Indices  []string
}

// SearchResult is the reshaped outcome of one datastore search.
type SearchResult struct {
	// Took is the datastore reported query time in milliseconds.
	Took int64
	// TotalCount is the total number of matching documents.
	TotalCount int64
	Events     []*SearchEvent
}

// SearchEvent is one matched document. Labels carries the raw multi
// sketch label entries extracted from the document; explore replaces
// them with the per sketch subset in Source[LabelField].
type SearchEvent struct {
	Index    string         `json:"_index"`
	ID       string         `json:"_id"`
	Type     string         `json:"_type"`
	Source   map[string]any `json:"_source"`
	Selected bool           `json:"selected"`

	Labels []DatastoreLabel `json:"-"`
}

// DatastoreLabel is one entry of the shared label field as stored in
// the search datastore.
type DatastoreLabel struct {
	Name     string    `json:"name"`
	SketchID uuid.UUID `json:"sketch_id"`
	UserID   uuid.UUID `json:"user_id"`
}

// ExploreMeta is rendering metadata for the explore result.
type ExploreMeta struct {
	ESTime         int64             `json:"es_time"`
	ESTotalCount   int64             `json:"es_total_count"`
	TimelineColors map[string]string `json:"timeline_colors"`
	TimelineNames  map[string]string `json:"timeline_names"`
}

// CountMeta carries the event count across sketch timelines.
type CountMeta struct {
	Count int64 `json:"count"`
}

// GraphRequest runs a raw graph query.
type GraphRequest struct {
	Query        string `json:"query"`
	OutputFormat string `json:"output_format"`
}

func (r GraphRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Query, validation.Required),
	)
}

// GraphResult is the reshaped outcome of one graph query.
type GraphResult struct {
	Graph json.RawMessage `json:"graph"`
	Rows  json.RawMessage `json:"rows"`
	Stats json.RawMessage `json:"stats"`
}
