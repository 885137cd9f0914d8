package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

func TestAccountingService_CreateSalesInvoice_Success(t *testing.T) {
	client := &mockERPClient{createResult: domain.Record{"name": "SINV-0001"}}
	svc := NewAccountingService(client, testLogger())

	items := []domain.Record{{"item_code": "WIDGET", "qty": 2.0}}
	result := svc.CreateSalesInvoice(context.Background(), "ACME Corp", items, "2026-01-15", "2026-02-15", nil)

	require.True(t, result.Success)
	assert.Equal(t, "Sales invoice created successfully", result.Message)
	assert.Equal(t, domain.Record{"name": "SINV-0001"}, result.Data)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, "create", call.op)
	assert.Equal(t, domain.DocTypeSalesInvoice, call.doctype)
	assert.Equal(t, "ACME Corp", call.doc["customer"])
	assert.Equal(t, "2026-01-15", call.doc["posting_date"])
	assert.Equal(t, "2026-02-15", call.doc["due_date"])
	assert.Equal(t, "Sales Invoice", call.doc["doctype"])
}

func TestAccountingService_CreateSalesInvoice_MissingPostingDate(t *testing.T) {
	client := &mockERPClient{}
	svc := NewAccountingService(client, testLogger())

	items := []domain.Record{{"item_code": "WIDGET", "qty": 1.0}}
	result := svc.CreateSalesInvoice(context.Background(), "ACME Corp", items, "", "", nil)

	require.False(t, result.Success)
	assert.Equal(t, domain.CodeValidation, result.ErrorCode)
	assert.Equal(t, "Missing required fields: posting_date", result.Message)
	assert.Equal(t, []string{"posting_date"}, result.Details["missing_fields"])
	assert.Empty(t, client.calls, "validation failures must not reach the client")
}

func TestAccountingService_CreatePayment_ClassifiesRemoteError(t *testing.T) {
	client := &mockERPClient{createErr: errors.New("PermissionError: user not allowed to create Payment Entry")}
	svc := NewAccountingService(client, testLogger())

	result := svc.CreatePayment(context.Background(), "Receive", "Customer", "ACME Corp", 150.0, "", "Cash - AC", "2026-01-15", nil)

	require.False(t, result.Success)
	assert.Equal(t, domain.CodePermission, result.ErrorCode)
	assert.Contains(t, result.Message, "Permission denied:")
}

func TestAccountingService_CreatePayment_MissingAmountNotReported(t *testing.T) {
	// A zero amount is still a present field; validation only rejects
	// absent or nil values.
	client := &mockERPClient{}
	svc := NewAccountingService(client, testLogger())

	result := svc.CreatePayment(context.Background(), "Receive", "Customer", "ACME Corp", 0, "", "", "", nil)

	require.True(t, result.Success)
	require.Len(t, client.calls, 1)
	assert.Equal(t, 0.0, client.calls[0].doc["paid_amount"])
}

func TestAccountingService_GetInvoice_SelectsDoctype(t *testing.T) {
	tests := []struct {
		invoiceType string
		doctype     domain.DocType
		message     string
	}{
		{"sales", domain.DocTypeSalesInvoice, "Sales invoice retrieved successfully"},
		{"Sales", domain.DocTypeSalesInvoice, "Sales invoice retrieved successfully"},
		{"purchase", domain.DocTypePurchaseInvoice, "Purchase invoice retrieved successfully"},
		{"anything", domain.DocTypePurchaseInvoice, "Anything invoice retrieved successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.invoiceType, func(t *testing.T) {
			client := &mockERPClient{getResult: domain.Record{"name": "INV-1"}}
			svc := NewAccountingService(client, testLogger())

			result := svc.GetInvoice(context.Background(), tt.invoiceType, "INV-1")

			require.True(t, result.Success)
			assert.Equal(t, tt.message, result.Message)
			assert.Equal(t, tt.doctype, client.lastCall().doctype)
		})
	}
}

func TestAccountingService_GetFinancialStatements_DispatchesByReportType(t *testing.T) {
	tests := []struct {
		reportType string
		reportName string
		message    string
	}{
		{"Balance Sheet", "Balance Sheet", "Balance Sheet retrieved successfully"},
		{"balance_sheet", "Balance Sheet", "Balance Sheet retrieved successfully"},
		{"Profit and Loss", "Profit and Loss Statement", "Profit and Loss Statement retrieved successfully"},
		{"income_statement", "Profit and Loss Statement", "Profit and Loss Statement retrieved successfully"},
		{"cash flow", "Cash Flow", "Cash Flow Statement retrieved successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.reportType, func(t *testing.T) {
			client := &mockERPClient{reportResult: domain.Record{"result": []any{}}}
			svc := NewAccountingService(client, testLogger())

			result := svc.GetFinancialStatements(context.Background(), "ACME Corp", tt.reportType, "2026-01-01", "2026-12-31")

			require.True(t, result.Success)
			assert.Equal(t, tt.message, result.Message)

			call := client.lastCall()
			assert.Equal(t, "report", call.op)
			assert.Equal(t, tt.reportName, call.name)
			assert.Equal(t, "ACME Corp", call.doc["company"])
			assert.Equal(t, "Monthly", call.doc["periodicity"])
			assert.Equal(t, "Date Range", call.doc["filter_based_on"])
		})
	}
}

func TestAccountingService_GetFinancialStatements_UnsupportedType(t *testing.T) {
	client := &mockERPClient{}
	svc := NewAccountingService(client, testLogger())

	result := svc.GetFinancialStatements(context.Background(), "ACME Corp", "cashflow-ish", "2026-01-01", "2026-12-31")

	require.False(t, result.Success)
	assert.Equal(t, domain.CodeValidation, result.ErrorCode)
	assert.Contains(t, result.Message, "Unsupported report type: cashflow-ish")
	assert.Empty(t, client.calls)
}

func TestAccountingService_GetTrialBalance_Filters(t *testing.T) {
	client := &mockERPClient{reportResult: domain.Record{"result": []any{}}}
	svc := NewAccountingService(client, testLogger())

	result := svc.GetTrialBalance(context.Background(), "ACME Corp", "2026-01-01", "2026-12-31", domain.Record{"fiscal_year": "2026"})

	require.True(t, result.Success)
	assert.Equal(t, "Trial Balance retrieved successfully", result.Message)

	call := client.lastCall()
	assert.Equal(t, "Trial Balance", call.name)
	assert.Equal(t, "2026", call.doc["fiscal_year"])
	assert.NotContains(t, call.doc, "filter_based_on")
}

func TestAccountingService_GetAccountBalance_Placeholder(t *testing.T) {
	client := &mockERPClient{}
	svc := NewAccountingService(client, testLogger())

	result := svc.GetAccountBalance(context.Background(), "Debtors - AC")

	require.True(t, result.Success)
	assert.Empty(t, client.calls)

	data, ok := result.Data.(domain.Record)
	require.True(t, ok)
	assert.Equal(t, "Debtors - AC", data["account"])
	assert.Equal(t, 0.0, data["balance"])
	assert.Contains(t, data["message"], "custom ERPNext API method")
}

func TestAccountingService_CreateCostCenter_DefaultParent(t *testing.T) {
	client := &mockERPClient{}
	svc := NewAccountingService(client, testLogger())

	result := svc.CreateCostCenter(context.Background(), "Marketing", "", nil)

	require.True(t, result.Success)
	assert.Equal(t, "Cost Center created successfully", result.Message)

	call := client.lastCall()
	assert.Equal(t, domain.DocTypeCostCenter, call.doctype)
	assert.Equal(t, "All Cost Centers - ", call.doc["parent_cost_center"])
}
