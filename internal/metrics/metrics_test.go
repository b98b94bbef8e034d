// SPDX-License-Identifier: MIT
package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionsCountedBySelect(t *testing.T) {
	before := testutil.ToFloat64(SelectionsTotal.WithLabelValues("department"))
	SelectionsTotal.WithLabelValues("department").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SelectionsTotal.WithLabelValues("department")))
}

func TestHandlerExposesFocusmapMetrics(t *testing.T) {
	DatasetMunicipalities.Set(9)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "focusmap_dataset_municipalities 9")
	assert.Contains(t, body, "focusmap_sessions_active")
}
