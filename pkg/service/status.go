package service

// EntityStatus is the lifecycle status shared by sketches, timelines
// and views. Soft deletion flips the status, rows are never removed.
type EntityStatus string

const (
	EntityStatusNew     EntityStatus = "new"
	EntityStatusActive  EntityStatus = "active"
	EntityStatusDeleted EntityStatus = "deleted"
)

var entityTransitions = map[EntityStatus][]EntityStatus{
	EntityStatusNew:     {EntityStatusActive, EntityStatusDeleted},
	EntityStatusActive:  {EntityStatusDeleted},
	EntityStatusDeleted: {},
}

// CanTransition reports whether the status may move to the target.
func (s EntityStatus) CanTransition(to EntityStatus) bool {
	for _, candidate := range entityTransitions[s] {
		if candidate == to {
			return true
		}
	}

	return false
}

// IndexStatus is the ingestion status of a search index.
type IndexStatus string

const (
	IndexStatusNew        IndexStatus = "new"
	IndexStatusProcessing IndexStatus = "processing"
	IndexStatusReady      IndexStatus = "ready"
	IndexStatusTimeout    IndexStatus = "timeout"
	IndexStatusDeleted    IndexStatus = "deleted"
)

// Terminal statuses never revert; deleted is reachable from anywhere
// so an index can always be retired.
var indexTransitions = map[IndexStatus][]IndexStatus{
	IndexStatusNew:        {IndexStatusProcessing, IndexStatusDeleted},
	IndexStatusProcessing: {IndexStatusReady, IndexStatusTimeout, IndexStatusDeleted},
	IndexStatusReady:      {IndexStatusDeleted},
	IndexStatusTimeout:    {IndexStatusDeleted},
	IndexStatusDeleted:    {},
}

// CanTransition reports whether the status may move to the target.
func (s IndexStatus) CanTransition(to IndexStatus) bool {
	for _, candidate := range indexTransitions[s] {
		if candidate == to {
			return true
		}
	}

	return false
}
