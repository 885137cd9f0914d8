package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// AccountingService covers invoicing, payments, accounting masters and
// the financial report suite.
type AccountingService interface {
	// CreateSalesInvoice creates a draft sales invoice. Items carry
	// item_code, qty and rate. Extra fields pass through unmapped.
	CreateSalesInvoice(ctx context.Context, customer string, items []domain.Record, postingDate, dueDate string, extra domain.Record) *domain.OperationResult

	// ApproveSalesInvoice submits a draft sales invoice.
	ApproveSalesInvoice(ctx context.Context, invoiceName string) *domain.OperationResult

	CreatePurchaseInvoice(ctx context.Context, supplier string, items []domain.Record, postingDate, dueDate string, extra domain.Record) *domain.OperationResult

	// CreatePayment records a payment entry. paymentType is "Receive"
	// or "Pay"; partyType is "Customer" or "Supplier".
	CreatePayment(ctx context.Context, paymentType, partyType, party string, paidAmount float64, paidFromAccount, paidToAccount, postingDate string, extra domain.Record) *domain.OperationResult

	// GetInvoice fetches one invoice. invoiceType is "sales" or
	// "purchase".
	GetInvoice(ctx context.Context, invoiceType, invoiceName string) *domain.OperationResult

	GetInvoicesList(ctx context.Context, invoiceType string, limit int) *domain.OperationResult

	GetPaymentsList(ctx context.Context, limit int) *domain.OperationResult

	// GetAccountBalance reports a ledger balance. The hosted API has no
	// balance endpoint, so this returns a zeroed placeholder payload.
	GetAccountBalance(ctx context.Context, account string) *domain.OperationResult

	CreateCostCenter(ctx context.Context, costCenterName, parentCostCenter string, extra domain.Record) *domain.OperationResult

	CreateBudget(ctx context.Context, costCenter, fiscalYear string, accounts []domain.Record, extra domain.Record) *domain.OperationResult

	CreateFiscalYear(ctx context.Context, year, yearStartDate, yearEndDate string, extra domain.Record) *domain.OperationResult

	// GetFinancialStatements dispatches to the matching statement
	// report. reportType accepts "Balance Sheet", "Profit and Loss" (or
	// "Income Statement") and "Cash Flow" in several spellings.
	GetFinancialStatements(ctx context.Context, company, reportType, fromDate, toDate string) *domain.OperationResult

	GetBalanceSheet(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult

	GetProfitAndLoss(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult

	GetCashFlow(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult

	GetTrialBalance(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult

	GetGeneralLedger(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult
}
