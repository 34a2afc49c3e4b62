package service_test

import (
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/stretchr/testify/assert"
)

func TestEntityStatusCanTransition(t *testing.T) {
	testCases := []struct {
		from   service.EntityStatus
		to     service.EntityStatus
		expect bool
	}{
		{service.EntityStatusNew, service.EntityStatusActive, true},
		{service.EntityStatusNew, service.EntityStatusDeleted, true},
		{service.EntityStatusActive, service.EntityStatusDeleted, true},
		{service.EntityStatusActive, service.EntityStatusNew, false},
		{service.EntityStatusDeleted, service.EntityStatusActive, false},
		{service.EntityStatusDeleted, service.EntityStatusNew, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIndexStatusCanTransition(t *testing.T) {
	testCases := []struct {
		from   service.IndexStatus
		to     service.IndexStatus
		expect bool
	}{
		{service.IndexStatusNew, service.IndexStatusProcessing, true},
		{service.IndexStatusProcessing, service.IndexStatusReady, true},
		{service.IndexStatusProcessing, service.IndexStatusTimeout, true},
		{service.IndexStatusReady, service.IndexStatusDeleted, true},
		{service.IndexStatusTimeout, service.IndexStatusDeleted, true},
		// Terminal statuses never revert.
		{service.IndexStatusTimeout, service.IndexStatusProcessing, false},
		{service.IndexStatusReady, service.IndexStatusProcessing, false},
		{service.IndexStatusDeleted, service.IndexStatusReady, false},
		{service.IndexStatusNew, service.IndexStatusReady, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
