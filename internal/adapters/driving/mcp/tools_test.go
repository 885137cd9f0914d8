package mcp

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/metrics"
)

func newTestServer(t *testing.T) (*Server, *mocks) {
	t.Helper()
	ports, m := testPorts()
	server, err := NewServer(ports, nil, nil)
	require.NoError(t, err)
	return server, m
}

func TestServer_handleCreateSalesInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards arguments and returns success envelope", func(t *testing.T) {
		server, m := newTestServer(t)
		m.accounting.result = domain.Succeed(domain.Record{"name": "SINV-0001"}, "Sales Invoice created successfully")

		items := []domain.Record{{"item_code": "WIDGET", "qty": 2.0, "rate": 50.0}}
		_, out, err := server.handleCreateSalesInvoice(ctx, nil, CreateSalesInvoiceInput{
			Customer:    "Acme Corp",
			Items:       items,
			PostingDate: "2026-01-15",
			DueDate:     "2026-02-15",
			Extra:       domain.Record{"currency": "USD"},
		})

		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.Equal(t, "Sales Invoice created successfully", out.Message)

		call := m.accounting.lastCall()
		assert.Equal(t, "CreateSalesInvoice", call.method)
		assert.Equal(t, []any{"Acme Corp", items, "2026-01-15", "2026-02-15", domain.Record{"currency": "USD"}}, call.args)
	})

	t.Run("business failure stays in the envelope", func(t *testing.T) {
		server, m := newTestServer(t)
		m.accounting.result = domain.Fail(domain.NewValidationError("Missing required fields: posting_date"))

		_, out, err := server.handleCreateSalesInvoice(ctx, nil, CreateSalesInvoiceInput{Customer: "Acme Corp"})

		require.NoError(t, err)
		assert.False(t, out.Success)
		assert.Equal(t, domain.CodeValidation, out.ErrorCode)
	})
}

func TestServer_ToolMetrics(t *testing.T) {
	ctx := context.Background()
	ports, m := testPorts()
	reg := metrics.New()
	server, err := NewServer(ports, nil, reg)
	require.NoError(t, err)

	_, _, err = server.handleGetCustomer(ctx, nil, DocumentNameInput{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.ToolCalls.WithLabelValues("get_customer", "success")))

	m.sales.result = domain.Fail(domain.NewNotFoundError("Customer Missing not found"))
	_, _, err = server.handleGetCustomer(ctx, nil, DocumentNameInput{Name: "Missing"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(reg.ToolCalls.WithLabelValues("get_customer", domain.CodeNotFound)))
}

func TestServer_SalesHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, out, err := server.handleCreateCustomer(ctx, nil, CreateCustomerInput{
		CustomerName: "Acme Corp",
		CustomerType: "Company",
		Email:        "ops@acme.example",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, svcCall{
		method: "CreateCustomer",
		args:   []any{"Acme Corp", "Company", "ops@acme.example", "", domain.Record(nil)},
	}, m.sales.lastCall())

	_, _, err = server.handleGetDeliveryNotesList(ctx, nil, GetDeliveryNotesListInput{Customer: "Acme Corp", Status: "Draft", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []any{"Acme Corp", "Draft", 5}, m.sales.lastCall().args)
}

func TestServer_PurchasingHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	items := []domain.Record{{"item_code": "BOLT", "qty": 100.0}}
	_, _, err := server.handleCreatePurchaseReturn(ctx, nil, CreateReturnInput{ReturnAgainst: "PREC-0007", Items: items})
	require.NoError(t, err)
	assert.Equal(t, svcCall{
		method: "CreatePurchaseReturn",
		args:   []any{"PREC-0007", items, domain.Record(nil)},
	}, m.purchasing.lastCall())

	_, _, err = server.handleSearchSuppliers(ctx, nil, SearchInput{Query: "steel", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []any{"steel", 3}, m.purchasing.lastCall().args)
}

func TestServer_InventoryHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleCreateItemPrice(ctx, nil, CreateItemPriceInput{
		ItemCode:      "WIDGET",
		PriceList:     "Standard Selling",
		PriceListRate: 99.5,
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"WIDGET", "Standard Selling", 99.5, domain.Record(nil)}, m.inventory.lastCall().args)

	_, _, err = server.handleGetStockBalance(ctx, nil, StockBalanceInput{ItemCode: "WIDGET"})
	require.NoError(t, err)
	assert.Equal(t, []any{"WIDGET", ""}, m.inventory.lastCall().args)
}

func TestServer_HRHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleMarkAttendance(ctx, nil, MarkAttendanceInput{
		Employee:       "HR-EMP-00001",
		AttendanceDate: "2026-03-02",
		Status:         "Present",
	})
	require.NoError(t, err)
	assert.Equal(t, svcCall{
		method: "MarkAttendance",
		args:   []any{"HR-EMP-00001", "2026-03-02", "Present", domain.Record(nil)},
	}, m.hr.lastCall())
}

func TestServer_ProjectsHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleLogTime(ctx, nil, LogTimeInput{
		Employee: "HR-EMP-00001",
		Hours:    4.5,
		Project:  "PROJ-0001",
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"HR-EMP-00001", 4.5, "", "", "", "PROJ-0001", "", domain.Record(nil)}, m.projects.lastCall().args)

	_, _, err = server.handleGetProjectTasks(ctx, nil, ProjectNameInput{ProjectName: "PROJ-0001"})
	require.NoError(t, err)
	assert.Equal(t, "GetProjectTasks", m.projects.lastCall().method)
}

func TestServer_ManufacturingHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleStartWorkOrder(ctx, nil, DocumentNameInput{Name: "MFG-WO-0001"})
	require.NoError(t, err)
	assert.Equal(t, svcCall{method: "StartWorkOrder", args: []any{"MFG-WO-0001"}}, m.manufacturing.lastCall())
}

func TestServer_CRMHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleConvertLeadToCustomer(ctx, nil, LeadNameInput{LeadName: "CRM-LEAD-0003"})
	require.NoError(t, err)
	assert.Equal(t, svcCall{method: "ConvertLeadToCustomer", args: []any{"CRM-LEAD-0003"}}, m.crm.lastCall())
}

func TestServer_AssetsHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleTransferAsset(ctx, nil, TransferAssetInput{
		Asset:          "AST-0001",
		TargetLocation: "HQ Basement",
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"AST-0001", "HQ Basement", "", domain.Record(nil)}, m.assets.lastCall().args)
}

func TestServer_SupportHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleCloseIssue(ctx, nil, CloseIssueInput{IssueName: "ISS-0042", Resolution: "rebooted"})
	require.NoError(t, err)
	assert.Equal(t, svcCall{method: "CloseIssue", args: []any{"ISS-0042", "rebooted"}}, m.support.lastCall())
}

func TestServer_UtilitiesHandlers(t *testing.T) {
	ctx := context.Background()
	server, m := newTestServer(t)

	_, _, err := server.handleBackupDatabase(ctx, nil, EmptyInput{})
	require.NoError(t, err)
	assert.Equal(t, "BackupDatabase", m.utilities.lastCall().method)

	_, _, err = server.handleBulkUpdateDocuments(ctx, nil, BulkUpdateInput{
		Doctype:      "Task",
		Filters:      domain.Record{"status": "Open"},
		UpdateFields: domain.Record{"priority": "High"},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"Task", domain.Record{"status": "Open"}, domain.Record{"priority": "High"}}, m.utilities.lastCall().args)
}
