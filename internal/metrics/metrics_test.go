package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveToolCall_Counts(t *testing.T) {
	m := New()

	m.ObserveToolCall("create_sales_invoice", "success", 0.02)
	m.ObserveToolCall("create_sales_invoice", "success", 0.01)
	m.ObserveToolCall("create_sales_invoice", "VALIDATION_ERROR", 0.001)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("create_sales_invoice", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToolCalls.WithLabelValues("create_sales_invoice", "VALIDATION_ERROR")))
}

func TestObserveAPIRequest_Counts(t *testing.T) {
	m := New()

	m.ObserveAPIRequest("GET", "2xx")
	m.ObserveAPIRequest("GET", "2xx")
	m.ObserveAPIRequest("POST", "4xx")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("GET", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.APIRequests.WithLabelValues("POST", "4xx")))
}

func TestHandler_ServesExposition(t *testing.T) {
	m := New()
	m.ObserveToolCall("get_customer", "success", 0.005)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "erpnext_mcp_tool_calls_total")
}
