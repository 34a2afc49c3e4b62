package gensql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The single view lookup must include soft deleted rows so the service
// layer can answer with the deleted marker instead of a 404, while the
// named view listing stays active only.
func TestViewQueriesStatusFiltering(t *testing.T) {
	assert.False(t, strings.Contains(getView, "status"))
	assert.True(t, strings.Contains(listNamedViews, "v.status = 'active'"))
}
