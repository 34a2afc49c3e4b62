package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type SearchIndexStorage interface {
	GetSearchIndex(ctx context.Context, id uuid.UUID) (*SearchIndex, error)
	GetSearchIndexByIndexName(ctx context.Context, indexName string) (*SearchIndex, error)
	// ListReadableSearchIndices returns the indices the user holds
	// read permission on, newest first.
	ListReadableSearchIndices(ctx context.Context, userID uuid.UUID) ([]*SearchIndex, error)
	ListProcessingSearchIndices(ctx context.Context, userID uuid.UUID) ([]*SearchIndex, error)
	// CreateSearchIndex creates the index record with the given
	// status and grants the creator the full permission set.
	CreateSearchIndex(ctx context.Context, creator *User, newIndex *NewSearchIndex) (*SearchIndex, error)
	// SetSearchIndexStatus applies the status transition table and
	// refuses moves out of a terminal status.
	SetSearchIndexStatus(ctx context.Context, id uuid.UUID, status IndexStatus) error
}

// SearchIndex is the metadata record for one search datastore index,
// including its ingestion status.
type SearchIndex struct {
	// id of the search index record.
	ID uuid.UUID `json:"id"`
	// name of the search index.
	Name string `json:"name"`
	// description of the search index.
	Description string `json:"description"`
	// index_name is the name of the index in the search datastore,
	// and doubles as the ingestion job id.
	IndexName string `json:"index_name"`
	// user that created the index.
	User *User `json:"user"`
	// status of the ingestion.
	Status IndexStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSearchIndex is the storage input when registering an index.
type NewSearchIndex struct {
	Name        string
	Description string
	IndexName   string
	Status      IndexStatus
}
