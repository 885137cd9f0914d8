package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure AccountingService implements the interface.
var _ driving.AccountingService = (*AccountingService)(nil)

// AccountingService handles invoicing, payments, accounting masters and
// financial reports.
type AccountingService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewAccountingService creates a new accounting service.
func NewAccountingService(client driven.ERPClient, log *zap.Logger) *AccountingService {
	return &AccountingService{client: client, log: log}
}

func (s *AccountingService) CreateSalesInvoice(ctx context.Context, customer string, items []domain.Record, postingDate, dueDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating sales invoice", zap.String("customer", customer))

	rec := domain.Record{"customer": customer, "items": items}
	setIfNotEmpty(rec, "posting_date", postingDate)
	setIfNotEmpty(rec, "due_date", dueDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeSalesInvoice)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSalesInvoice, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales invoice created successfully")
}

func (s *AccountingService) ApproveSalesInvoice(ctx context.Context, invoiceName string) *domain.OperationResult {
	s.log.Info("approving sales invoice", zap.String("invoice", invoiceName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypeSalesInvoice, invoiceName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales invoice approved successfully")
}

func (s *AccountingService) CreatePurchaseInvoice(ctx context.Context, supplier string, items []domain.Record, postingDate, dueDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating purchase invoice", zap.String("supplier", supplier))

	rec := domain.Record{"supplier": supplier, "items": items}
	setIfNotEmpty(rec, "posting_date", postingDate)
	setIfNotEmpty(rec, "due_date", dueDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypePurchaseInvoice)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypePurchaseInvoice, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase invoice created successfully")
}

func (s *AccountingService) CreatePayment(ctx context.Context, paymentType, partyType, party string, paidAmount float64, paidFromAccount, paidToAccount, postingDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating payment entry",
		zap.String("payment_type", paymentType),
		zap.String("party_type", partyType),
		zap.String("party", party))

	rec := domain.Record{
		"payment_type": paymentType,
		"party_type":   partyType,
		"party":        party,
		"paid_amount":  paidAmount,
	}
	setIfNotEmpty(rec, "paid_from", paidFromAccount)
	setIfNotEmpty(rec, "paid_to", paidToAccount)
	setIfNotEmpty(rec, "posting_date", postingDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypePaymentEntry)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypePaymentEntry, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Payment entry created successfully")
}

func (s *AccountingService) GetInvoice(ctx context.Context, invoiceType, invoiceName string) *domain.OperationResult {
	doctype := invoiceDoctype(invoiceType)
	s.log.Info("getting invoice", zap.String("type", invoiceType), zap.String("invoice", invoiceName))

	result, err := s.client.GetDocument(ctx, doctype, invoiceName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("%s invoice retrieved successfully", titleCase(invoiceType)))
}

func (s *AccountingService) GetInvoicesList(ctx context.Context, invoiceType string, limit int) *domain.OperationResult {
	doctype := invoiceDoctype(invoiceType)
	s.log.Info("getting invoices list", zap.String("type", invoiceType))

	result, err := s.client.ListDocuments(ctx, doctype, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("%s invoices retrieved successfully", titleCase(invoiceType)))
}

func (s *AccountingService) GetPaymentsList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting payments list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypePaymentEntry, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Payments retrieved successfully")
}

// GetAccountBalance has no remote endpoint on the standard REST
// surface, so it reports a zero balance with an explanatory payload.
func (s *AccountingService) GetAccountBalance(ctx context.Context, account string) *domain.OperationResult {
	s.log.Info("getting account balance", zap.String("account", account))

	result := domain.Record{
		"account": account,
		"balance": 0.0,
		"message": "This would require a custom ERPNext API method to get real balance",
	}
	return domain.Succeed(result, fmt.Sprintf("Account balance retrieved for %s", account))
}

func (s *AccountingService) CreateCostCenter(ctx context.Context, costCenterName, parentCostCenter string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating cost center", zap.String("cost_center", costCenterName))

	rec := domain.Record{
		"cost_center_name":   costCenterName,
		"parent_cost_center": orDefault(parentCostCenter, "All Cost Centers - "),
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeCostCenter)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeCostCenter, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Cost Center created successfully")
}

func (s *AccountingService) CreateBudget(ctx context.Context, costCenter, fiscalYear string, accounts []domain.Record, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating budget", zap.String("cost_center", costCenter))

	rec := domain.Record{
		"cost_center": costCenter,
		"fiscal_year": fiscalYear,
		"accounts":    accounts,
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeBudget)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeBudget, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Budget created successfully")
}

func (s *AccountingService) CreateFiscalYear(ctx context.Context, year, yearStartDate, yearEndDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating fiscal year", zap.String("year", year))

	rec := domain.Record{
		"year":            year,
		"year_start_date": yearStartDate,
		"year_end_date":   yearEndDate,
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeFiscalYear)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeFiscalYear, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Fiscal Year created successfully")
}

func (s *AccountingService) GetFinancialStatements(ctx context.Context, company, reportType, fromDate, toDate string) *domain.OperationResult {
	s.log.Info("getting financial statements",
		zap.String("company", company),
		zap.String("report_type", reportType))

	switch strings.ToLower(reportType) {
	case "balance sheet", "balance_sheet":
		return s.GetBalanceSheet(ctx, company, fromDate, toDate, nil)
	case "profit and loss", "profit_and_loss", "income statement", "income_statement":
		return s.GetProfitAndLoss(ctx, company, fromDate, toDate, nil)
	case "cash flow", "cash_flow", "cash flow statement", "cash_flow_statement":
		return s.GetCashFlow(ctx, company, fromDate, toDate, nil)
	default:
		return domain.Fail(domain.NewValidationError(fmt.Sprintf(
			"Unsupported report type: %s. Supported types: Balance Sheet, Profit and Loss, Cash Flow", reportType)))
	}
}

func (s *AccountingService) GetBalanceSheet(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return s.runStatement(ctx, "Balance Sheet", "Balance Sheet retrieved successfully", company, fromDate, toDate, extra)
}

func (s *AccountingService) GetProfitAndLoss(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return s.runStatement(ctx, "Profit and Loss Statement", "Profit and Loss Statement retrieved successfully", company, fromDate, toDate, extra)
}

func (s *AccountingService) GetCashFlow(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return s.runStatement(ctx, "Cash Flow", "Cash Flow Statement retrieved successfully", company, fromDate, toDate, extra)
}

func (s *AccountingService) GetTrialBalance(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("running trial balance", zap.String("company", company))

	filters := domain.Record{
		"company":     company,
		"from_date":   fromDate,
		"to_date":     toDate,
		"periodicity": "Monthly",
	}
	filters = filters.Merge(extra)

	result, err := s.client.RunReport(ctx, "Trial Balance", filters)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Trial Balance retrieved successfully")
}

func (s *AccountingService) GetGeneralLedger(ctx context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("running general ledger", zap.String("company", company))

	filters := domain.Record{
		"company":    company,
		"from_date":  fromDate,
		"to_date":    toDate,
		"group_by":   "",
		"account":    "",
		"party_type": "",
		"party":      "",
	}
	filters = filters.Merge(extra)

	result, err := s.client.RunReport(ctx, "General Ledger", filters)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "General Ledger retrieved successfully")
}

// runStatement executes one of the period statement reports, which all
// share the same filter shape.
func (s *AccountingService) runStatement(ctx context.Context, reportName, message, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("running financial statement",
		zap.String("report", reportName),
		zap.String("company", company))

	filters := domain.Record{
		"company":         company,
		"from_date":       fromDate,
		"to_date":         toDate,
		"periodicity":     "Monthly",
		"filter_based_on": "Date Range",
	}
	filters = filters.Merge(extra)

	result, err := s.client.RunReport(ctx, reportName, filters)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, message)
}

// invoiceDoctype resolves "sales"/"purchase" selectors; anything other
// than sales falls back to purchase, matching list and get behaviour.
func invoiceDoctype(invoiceType string) domain.DocType {
	if strings.EqualFold(invoiceType, "sales") {
		return domain.DocTypeSalesInvoice
	}
	return domain.DocTypePurchaseInvoice
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
