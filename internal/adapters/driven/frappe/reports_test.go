package frappe

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

func TestRunReport_QueryReportSucceeds(t *testing.T) {
	var args domain.Record

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/method/frappe.desk.query_report.run", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&args))
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"result": []any{map[string]any{"account": "Cash"}}},
		})
	}))

	result, err := client.RunReport(context.Background(), "Balance Sheet", domain.Record{"company": "ACME Corp"})

	require.NoError(t, err)
	assert.NotNil(t, result["result"])
	assert.Equal(t, "Balance Sheet", args["report_name"])

	filters, ok := args["filters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ACME Corp", filters["company"])
}

func TestRunReport_FallsBackToReportview(t *testing.T) {
	calls := []string{}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if r.URL.Path == "/api/method/frappe.desk.query_report.run" {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]any{"message": "not permitted"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"values": []any{}},
		})
	}))

	result, err := client.RunReport(context.Background(), "General Ledger", nil)

	require.NoError(t, err)
	assert.NotNil(t, result["values"])
	assert.Equal(t, []string{
		"/api/method/frappe.desk.query_report.run",
		"/api/method/frappe.desk.reportview.get_data",
	}, calls)
}

func TestRunReport_BothFail_ReturnsPlaceholder(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"message": "report engine offline"})
	}))

	result, err := client.RunReport(context.Background(), "Trial Balance", domain.Record{"company": "ACME Corp"})

	require.NoError(t, err, "report failures degrade to a payload, never an error")
	assert.Equal(t, true, result["error"])
	assert.Equal(t, "Trial Balance", result["report_name"])
	assert.Contains(t, result["message"], "Report execution failed")
	assert.Equal(t, []any{}, result["result"])
	assert.Equal(t, []any{}, result["columns"])
}
