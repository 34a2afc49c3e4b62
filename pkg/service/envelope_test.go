package service_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeAlwaysEncodesObjectsAsArray(t *testing.T) {
	envelope := service.NewEnvelope[service.EmptyMeta, string](service.EmptyMeta{}, nil)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	assert.JSONEq(t, `{"meta": {}, "objects": []}`, string(raw))
}

func TestCreatedStatusCode(t *testing.T) {
	created := service.NewCreated(service.EmptyMeta{}, []string{"a"})
	assert.Equal(t, http.StatusCreated, created.StatusCode())
}
