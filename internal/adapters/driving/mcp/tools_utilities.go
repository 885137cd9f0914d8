package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateWorkflowInput is the input schema for create_workflow.
type CreateWorkflowInput struct {
	WorkflowName string          `json:"workflow_name" jsonschema:"the new workflow name"`
	DocumentType string          `json:"document_type" jsonschema:"the doctype the workflow governs"`
	States       []domain.Record `json:"states" jsonschema:"workflow states with state and doc_status"`
	Transitions  []domain.Record `json:"transitions" jsonschema:"transitions with state, action and next_state"`
	Extra        domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreatePrintFormatInput is the input schema for create_print_format.
type CreatePrintFormatInput struct {
	PrintFormatName string        `json:"print_format_name" jsonschema:"the new print format name"`
	DocType         string        `json:"doc_type" jsonschema:"the doctype the format prints"`
	Extra           domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateCustomFieldInput is the input schema for create_custom_field.
type CreateCustomFieldInput struct {
	Dt        string        `json:"dt" jsonschema:"the doctype the field is added to"`
	Fieldname string        `json:"fieldname" jsonschema:"the machine field name"`
	Fieldtype string        `json:"fieldtype" jsonschema:"the field type, e.g. Data or Select"`
	Label     string        `json:"label" jsonschema:"the human-readable label"`
	Extra     domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateNotificationInput is the input schema for create_notification.
type CreateNotificationInput struct {
	Subject      string        `json:"subject" jsonschema:"the notification subject line"`
	DocumentType string        `json:"document_type" jsonschema:"the doctype the notification watches"`
	Recipients   []string      `json:"recipients,omitempty" jsonschema:"document fields holding recipient addresses"`
	Extra        domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// ExecuteReportInput is the input schema for execute_report.
type ExecuteReportInput struct {
	ReportName string        `json:"report_name" jsonschema:"the query report to run"`
	Filters    domain.Record `json:"filters,omitempty" jsonschema:"report filters"`
}

// DocumentPermissionsInput is the input schema for get_document_permissions.
type DocumentPermissionsInput struct {
	Doctype string `json:"doctype" jsonschema:"the document's doctype"`
	Name    string `json:"name" jsonschema:"the document name (ID)"`
}

// BulkUpdateInput is the input schema for bulk_update_documents.
type BulkUpdateInput struct {
	Doctype      string        `json:"doctype" jsonschema:"the doctype to update"`
	Filters      domain.Record `json:"filters" jsonschema:"equality filters selecting the documents"`
	UpdateFields domain.Record `json:"update_fields" jsonschema:"field values applied to every match"`
}

// DashboardInput is the input schema for get_dashboard_data.
type DashboardInput struct {
	DashboardName string `json:"dashboard_name" jsonschema:"the dashboard to read"`
}

// EmptyInput is the input schema for tools that take no arguments.
type EmptyInput struct{}

func (s *Server) registerUtilitiesTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_workflow",
		Description: "Create a document workflow",
	}, s.handleCreateWorkflow)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_print_format",
		Description: "Create a print format for a doctype",
	}, s.handleCreatePrintFormat)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_custom_field",
		Description: "Add a custom field to a doctype",
	}, s.handleCreateCustomField)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_notification",
		Description: "Create a notification rule for a doctype",
	}, s.handleCreateNotification)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "backup_database",
		Description: "Start a database backup on the server",
	}, s.handleBackupDatabase)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_system_settings",
		Description: "Read the system settings",
	}, s.handleGetSystemSettings)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "execute_report",
		Description: "Run a query report with optional filters",
	}, s.handleExecuteReport)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_document_permissions",
		Description: "Report the current user's permissions on a document",
	}, s.handleGetDocumentPermissions)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "bulk_update_documents",
		Description: "Update every document matching the filters",
	}, s.handleBulkUpdateDocuments)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_dashboard_data",
		Description: "Read a dashboard's data",
	}, s.handleGetDashboardData)
}

func (s *Server) handleCreateWorkflow(ctx context.Context, _ *mcp.CallToolRequest, in CreateWorkflowInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.CreateWorkflow(ctx, in.WorkflowName, in.DocumentType, in.States, in.Transitions, in.Extra)
	return s.finish("create_workflow", start, res)
}

func (s *Server) handleCreatePrintFormat(ctx context.Context, _ *mcp.CallToolRequest, in CreatePrintFormatInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.CreatePrintFormat(ctx, in.PrintFormatName, in.DocType, in.Extra)
	return s.finish("create_print_format", start, res)
}

func (s *Server) handleCreateCustomField(ctx context.Context, _ *mcp.CallToolRequest, in CreateCustomFieldInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.CreateCustomField(ctx, in.Dt, in.Fieldname, in.Fieldtype, in.Label, in.Extra)
	return s.finish("create_custom_field", start, res)
}

func (s *Server) handleCreateNotification(ctx context.Context, _ *mcp.CallToolRequest, in CreateNotificationInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.CreateNotification(ctx, in.Subject, in.DocumentType, in.Recipients, in.Extra)
	return s.finish("create_notification", start, res)
}

func (s *Server) handleBackupDatabase(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.BackupDatabase(ctx)
	return s.finish("backup_database", start, res)
}

func (s *Server) handleGetSystemSettings(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.GetSystemSettings(ctx)
	return s.finish("get_system_settings", start, res)
}

func (s *Server) handleExecuteReport(ctx context.Context, _ *mcp.CallToolRequest, in ExecuteReportInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.ExecuteReport(ctx, in.ReportName, in.Filters)
	return s.finish("execute_report", start, res)
}

func (s *Server) handleGetDocumentPermissions(ctx context.Context, _ *mcp.CallToolRequest, in DocumentPermissionsInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.GetDocumentPermissions(ctx, in.Doctype, in.Name)
	return s.finish("get_document_permissions", start, res)
}

func (s *Server) handleBulkUpdateDocuments(ctx context.Context, _ *mcp.CallToolRequest, in BulkUpdateInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.BulkUpdateDocuments(ctx, in.Doctype, in.Filters, in.UpdateFields)
	return s.finish("bulk_update_documents", start, res)
}

func (s *Server) handleGetDashboardData(ctx context.Context, _ *mcp.CallToolRequest, in DashboardInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Utilities.GetDashboardData(ctx, in.DashboardName)
	return s.finish("get_dashboard_data", start, res)
}
