package frappe

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// RunReport executes a named report. The query report engine is tried
// first; if it rejects the request the reportview endpoint is used as a
// degraded fallback. When both fail the caller still gets a structured
// payload describing the failure instead of an error, so report tools
// degrade gracefully on instances without the report.
func (c *Client) RunReport(ctx context.Context, reportName string, filters domain.Record) (domain.Record, error) {
	if filters == nil {
		filters = domain.Record{}
	}

	result, err := c.CallMethod(ctx, "frappe.desk.query_report.run", domain.Record{
		"report_name": reportName,
		"filters":     filters,
	})
	if err == nil {
		return result, nil
	}

	c.log.Warn("query report failed, trying reportview",
		zap.String("report", reportName),
		zap.Error(err))

	result, fallbackErr := c.CallMethod(ctx, "frappe.desk.reportview.get_data", domain.Record{
		"report_name": reportName,
		"filters":     filters,
	})
	if fallbackErr == nil {
		return result, nil
	}

	c.log.Warn("reportview fallback failed",
		zap.String("report", reportName),
		zap.Error(fallbackErr))

	return domain.Record{
		"error":       true,
		"message":     fmt.Sprintf("Report execution failed: %v", err),
		"report_name": reportName,
		"filters":     filters,
		"result":      []any{},
		"columns":     []any{},
	}, nil
}
