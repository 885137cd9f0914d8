package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure UtilitiesService implements the interface.
var _ driving.UtilitiesService = (*UtilitiesService)(nil)

// UtilitiesService covers cross-cutting administration operations:
// workflows, customisations, reports, backups and bulk updates.
type UtilitiesService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewUtilitiesService creates a new utilities service.
func NewUtilitiesService(client driven.ERPClient, log *zap.Logger) *UtilitiesService {
	return &UtilitiesService{client: client, log: log}
}

func (s *UtilitiesService) CreateWorkflow(ctx context.Context, workflowName, documentType string, states, transitions []domain.Record, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating workflow",
		zap.String("workflow", workflowName),
		zap.String("document_type", documentType))

	rec := domain.Record{
		"workflow_name": workflowName,
		"document_type": documentType,
		"states":        states,
		"transitions":   transitions,
		"is_active":     1,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeWorkflow)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeWorkflow, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Workflow created successfully")
}

func (s *UtilitiesService) CreatePrintFormat(ctx context.Context, printFormatName, docType string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating print format", zap.String("print_format", printFormatName))

	rec := domain.Record{
		"name":     printFormatName,
		"doc_type": docType,
	}
	rec = rec.Merge(extra)

	result, err := s.client.CreateDocument(ctx, domain.DocTypePrintFormat, domain.MapRecord(rec, domain.DocTypePrintFormat))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Print Format created successfully")
}

func (s *UtilitiesService) CreateCustomField(ctx context.Context, dt, fieldname, fieldtype, label string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating custom field",
		zap.String("doctype", dt),
		zap.String("fieldname", fieldname))

	rec := domain.Record{
		"dt":        dt,
		"fieldname": fieldname,
		"fieldtype": fieldtype,
		"label":     label,
	}
	rec = rec.Merge(extra)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeCustomField, domain.MapRecord(rec, domain.DocTypeCustomField))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Custom Field created successfully")
}

func (s *UtilitiesService) CreateNotification(ctx context.Context, subject, documentType string, recipients []string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating notification", zap.String("subject", subject))

	rows := make([]domain.Record, 0, len(recipients))
	for _, r := range recipients {
		rows = append(rows, domain.Record{"receiver_by_document_field": r})
	}

	rec := domain.Record{
		"subject":       subject,
		"document_type": documentType,
		"recipients":    rows,
		"enabled":       1,
	}
	rec = rec.Merge(extra)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeNotification, domain.MapRecord(rec, domain.DocTypeNotification))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Notification created successfully")
}

func (s *UtilitiesService) BackupDatabase(ctx context.Context) *domain.OperationResult {
	s.log.Info("initiating database backup")

	result, err := s.client.CallMethod(ctx, "frappe.utils.backups.new_backup", domain.Record{})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Database backup initiated successfully")
}

func (s *UtilitiesService) GetSystemSettings(ctx context.Context) *domain.OperationResult {
	s.log.Info("getting system settings")

	result, err := s.client.GetDocument(ctx, domain.DocTypeSystemSettings, "System Settings")
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "System settings retrieved")
}

func (s *UtilitiesService) ExecuteReport(ctx context.Context, reportName string, filters domain.Record) *domain.OperationResult {
	s.log.Info("executing report", zap.String("report", reportName))

	if filters == nil {
		filters = domain.Record{}
	}
	result, err := s.client.CallMethod(ctx, "frappe.desk.query_report.run", domain.Record{
		"report_name": reportName,
		"filters":     filters,
	})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Report %s executed successfully", reportName))
}

func (s *UtilitiesService) GetDocumentPermissions(ctx context.Context, doctype, name string) *domain.OperationResult {
	s.log.Info("getting document permissions",
		zap.String("doctype", doctype),
		zap.String("name", name))

	result, err := s.client.CallMethod(ctx, "frappe.permissions.get_doc_permissions", domain.Record{
		"doctype": doctype,
		"name":    name,
	})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Permissions retrieved successfully")
}

// BulkUpdateDocuments applies the same field updates to every document
// matching the filters. Per-document failures are logged and skipped so a
// single bad document does not abort the batch.
func (s *UtilitiesService) BulkUpdateDocuments(ctx context.Context, doctype string, filters, updateFields domain.Record) *domain.OperationResult {
	s.log.Info("bulk updating documents", zap.String("doctype", doctype))

	var eq []domain.Filter
	for field, value := range filters {
		eq = append(eq, domain.Eq(field, value))
	}

	dt := domain.DocType(doctype)
	docs, err := s.client.ListDocuments(ctx, dt, eq, []string{"name"}, 0)
	if err != nil {
		return domain.Fail(err)
	}

	updated := 0
	for _, doc := range docs {
		name, ok := doc["name"].(string)
		if !ok {
			continue
		}
		if _, err := s.client.UpdateDocument(ctx, dt, name, updateFields); err != nil {
			s.log.Warn("bulk update skipped document",
				zap.String("name", name),
				zap.Error(err))
			continue
		}
		updated++
	}

	data := domain.Record{
		"total_found":   len(docs),
		"updated_count": updated,
		"update_fields": updateFields,
	}
	return domain.Succeed(data, fmt.Sprintf("Bulk update completed: %d/%d documents updated", updated, len(docs)))
}

func (s *UtilitiesService) GetDashboardData(ctx context.Context, dashboardName string) *domain.OperationResult {
	s.log.Info("getting dashboard data", zap.String("dashboard", dashboardName))

	data := domain.Record{
		"dashboard_name": dashboardName,
		"message":        "This would require custom ERPNext dashboard API integration",
	}
	return domain.Succeed(data, "Dashboard data retrieved")
}
