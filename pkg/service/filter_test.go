package service_test

import (
	"encoding/json"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFilterNormalize(t *testing.T) {
	testCases := []struct {
		name   string
		filter service.QueryFilter
		expect service.QueryFilter
	}{
		{
			name:   "empty filter gets defaults",
			filter: service.QueryFilter{},
			expect: service.QueryFilter{
				Size:    40,
				Order:   "asc",
				Indices: []string{},
				Events:  []string{},
			},
		},
		{
			name: "existing values are kept",
			filter: service.QueryFilter{
				From:    20,
				Size:    100,
				Order:   "desc",
				Indices: []string{"abc"},
				Events:  []string{"ev1"},
			},
			expect: service.QueryFilter{
				From:    20,
				Size:    100,
				Order:   "desc",
				Indices: []string{"abc"},
				Events:  []string{"ev1"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Normalize()
			assert.Empty(t, cmp.Diff(tc.expect, got))
		})
	}
}

func TestQueryFilterHasCriterion(t *testing.T) {
	assert.False(t, service.QueryFilter{}.HasCriterion())
	assert.True(t, service.QueryFilter{Star: true}.HasCriterion())
	assert.True(t, service.QueryFilter{Events: []string{"ev1"}}.HasCriterion())
}

func TestExploreRequestHasCriterion(t *testing.T) {
	assert.False(t, service.ExploreRequest{}.HasCriterion())
	assert.True(t, service.ExploreRequest{Query: "foo"}.HasCriterion())
	assert.True(t, service.ExploreRequest{DSL: json.RawMessage(`{"query":{}}`)}.HasCriterion())
	assert.True(t, service.ExploreRequest{Filter: service.QueryFilter{Star: true}}.HasCriterion())
}

func TestParseQueryFilter(t *testing.T) {
	t.Run("empty input yields normalized defaults", func(t *testing.T) {
		got, err := service.ParseQueryFilter(nil)
		require.NoError(t, err)
		assert.Equal(t, 40, got.Size)
		assert.Equal(t, "asc", got.Order)
	})

	t.Run("partial filter keeps stored values", func(t *testing.T) {
		got, err := service.ParseQueryFilter(json.RawMessage(`{"size": 10, "star": true}`))
		require.NoError(t, err)
		assert.Equal(t, 10, got.Size)
		assert.True(t, got.Star)
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, err := service.ParseQueryFilter(json.RawMessage(`{]`))
		assert.Error(t, err)
	})
}

func TestResolveIndices(t *testing.T) {
	sketchIndices := []string{"idx1", "idx2", "idx3"}

	testCases := []struct {
		name      string
		requested []string
		expect    []string
	}{
		{
			name:      "empty request means every sketch index",
			requested: nil,
			expect:    []string{"idx1", "idx2", "idx3"},
		},
		{
			name:      "wildcard means every sketch index",
			requested: []string{"_all"},
			expect:    []string{"idx1", "idx2", "idx3"},
		},
		{
			name:      "explicit subset",
			requested: []string{"idx2"},
			expect:    []string{"idx2"},
		},
		{
			name:      "indices outside the sketch are dropped",
			requested: []string{"idx2", "other"},
			expect:    []string{"idx2"},
		},
		{
			name:      "only foreign indices yields empty set",
			requested: []string{"other"},
			expect:    []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.ResolveIndices(tc.requested, sketchIndices)
			assert.Empty(t, cmp.Diff(tc.expect, got))
		})
	}
}
