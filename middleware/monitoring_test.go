package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMonitorMiddleware_RecordsNumericStatus(t *testing.T) {
	handler := MonitorMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/missing", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/missing", "GET", "404"))
	assert.Equal(t, float64(1), got)
}

func TestMonitorMiddleware_DefaultsToStatusOK(t *testing.T) {
	handler := MonitorMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No explicit WriteHeader; net/http implies 200.
	}))

	req := httptest.NewRequest("GET", "/implicit-ok", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/implicit-ok", "GET", "200"))
	assert.Equal(t, float64(1), got)
}
