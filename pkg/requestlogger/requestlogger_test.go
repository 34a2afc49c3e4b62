package requestlogger_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/caseboard/caseboard-backend/pkg/requestlogger"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newErrorCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "caseboard_backend",
		Name:      "errors",
	}, []string{"location"})
}

func TestMiddlewareCountsErrorResponses(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		location string
		expect   float64
	}{
		{
			name:     "not found is counted",
			status:   http.StatusNotFound,
			location: "GET /sketches/{id}/",
			expect:   1,
		},
		{
			name:     "server error is counted",
			status:   http.StatusInternalServerError,
			location: "GET /sketches/{id}/",
			expect:   1,
		},
		{
			name:     "success is not counted",
			status:   http.StatusOK,
			location: "GET /sketches/{id}/",
			expect:   0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errors := newErrorCounter()
			logger := zerolog.New(&bytes.Buffer{})

			router := chi.NewRouter()
			router.Use(requestlogger.Middleware(logger, errors))
			router.Get("/sketches/{id}/", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sketches/42/", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.expect, testutil.ToFloat64(errors.WithLabelValues(tc.location)),
				"errors are labeled with the route pattern, not the raw path")
		})
	}
}

func TestMiddlewareSkipsFilteredPaths(t *testing.T) {
	errors := newErrorCounter()

	var logged bytes.Buffer
	logger := zerolog.New(&logged)

	router := chi.NewRouter()
	router.Use(requestlogger.Middleware(logger, errors, "/metrics"))
	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Zero(t, logged.Len())
	assert.Equal(t, float64(0), testutil.ToFloat64(errors.WithLabelValues("GET /metrics")))
}
