package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// UtilitiesService covers cross-cutting administration: workflows,
// customisation, backups, reports and bulk edits.
type UtilitiesService interface {
	CreateWorkflow(ctx context.Context, workflowName, documentType string, states, transitions []domain.Record, extra domain.Record) *domain.OperationResult

	CreatePrintFormat(ctx context.Context, printFormatName, docType string, extra domain.Record) *domain.OperationResult

	CreateCustomField(ctx context.Context, dt, fieldname, fieldtype, label string, extra domain.Record) *domain.OperationResult

	CreateNotification(ctx context.Context, subject, documentType string, recipients []string, extra domain.Record) *domain.OperationResult

	// BackupDatabase asks the server to start a backup.
	BackupDatabase(ctx context.Context) *domain.OperationResult

	GetSystemSettings(ctx context.Context) *domain.OperationResult

	// ExecuteReport runs a named query report with optional filters.
	ExecuteReport(ctx context.Context, reportName string, filters domain.Record) *domain.OperationResult

	GetDocumentPermissions(ctx context.Context, doctype, name string) *domain.OperationResult

	// BulkUpdateDocuments updates every document matching the filters,
	// counting per-document successes; one failed document does not
	// abort the rest.
	BulkUpdateDocuments(ctx context.Context, doctype string, filters domain.Record, updateFields domain.Record) *domain.OperationResult

	// GetDashboardData reports dashboard contents. The hosted API has
	// no dashboard endpoint, so this returns a placeholder payload.
	GetDashboardData(ctx context.Context, dashboardName string) *domain.OperationResult
}
