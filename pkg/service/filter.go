package service

import "encoding/json"

// AllIndices is the wildcard sentinel clients put in a query filter to
// mean "every index in the sketch".
const AllIndices = "_all"

// QueryFilter is the structured part of a submitted or saved search.
// It is stored verbatim as JSON on views and search templates.
type QueryFilter struct {
	// from is the result offset.
	From int `json:"from"`
	// size is the maximum number of returned events.
	Size int `json:"size"`
	// indices the query runs against, or the _all sentinel.
	Indices []string `json:"indices"`
	// star limits the result to starred events.
	Star bool `json:"star"`
	// events is an explicit list of event document ids.
	Events []string `json:"events"`
	// time_start and time_end bound the query interval.
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	// order is the sort order of the result, asc or desc.
	Order string `json:"order"`
}

const (
	defaultFilterSize  = 40
	defaultFilterOrder = "asc"
)

// Normalize fills in defaults for fields older clients leave out, so
// every stored filter carries the full set of expected attributes.
func (f QueryFilter) Normalize() QueryFilter {
	if f.Size == 0 {
		f.Size = defaultFilterSize
	}
	if f.Order == "" {
		f.Order = defaultFilterOrder
	}
	if f.Indices == nil {
		f.Indices = []string{}
	}
	if f.Events == nil {
		f.Events = []string{}
	}

	return f
}

// HasCriterion reports whether the filter on its own selects events,
// either by the star flag or an explicit event list.
func (f QueryFilter) HasCriterion() bool {
	return f.Star || len(f.Events) > 0
}

// ParseQueryFilter decodes a stored filter.
func ParseQueryFilter(raw json.RawMessage) (QueryFilter, error) {
	var f QueryFilter
	if len(raw) == 0 {
		return f.Normalize(), nil
	}

	if err := json.Unmarshal(raw, &f); err != nil {
		return QueryFilter{}, err
	}

	return f, nil
}

// MarshalFilter encodes a filter for storage.
func MarshalFilter(f QueryFilter) (json.RawMessage, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}

	return raw, nil
}

// ResolveIndices computes the effective index set for a query: the
// submitted indices (or the sketch's own set when empty or when the
// _all sentinel is present) intersected with the indices belonging to
// the sketch. Indices outside the sketch are dropped silently, which
// also hides soft deleted timelines.
func ResolveIndices(requested []string, sketchIndices []string) []string {
	useAll := len(requested) == 0
	for _, index := range requested {
		if index == AllIndices {
			useAll = true
			break
		}
	}
	if useAll {
		requested = sketchIndices
	}

	allowed := make(map[string]bool, len(sketchIndices))
	for _, index := range sketchIndices {
		allowed[index] = true
	}

	validated := make([]string, 0, len(requested))
	for _, index := range requested {
		if allowed[index] {
			validated = append(validated, index)
		}
	}

	return validated
}
