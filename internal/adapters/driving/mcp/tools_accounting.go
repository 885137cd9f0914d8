package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateSalesInvoiceInput is the input schema for create_sales_invoice.
type CreateSalesInvoiceInput struct {
	Customer    string          `json:"customer" jsonschema:"the customer the invoice is billed to"`
	Items       []domain.Record `json:"items" jsonschema:"invoice lines with item_code, qty and rate"`
	PostingDate string          `json:"posting_date" jsonschema:"invoice posting date (YYYY-MM-DD)"`
	DueDate     string          `json:"due_date,omitempty" jsonschema:"payment due date (YYYY-MM-DD)"`
	Extra       domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// DocumentNameInput identifies a single document by name.
type DocumentNameInput struct {
	Name string `json:"name" jsonschema:"the document name (ID)"`
}

// CreatePurchaseInvoiceInput is the input schema for create_purchase_invoice.
type CreatePurchaseInvoiceInput struct {
	Supplier    string          `json:"supplier" jsonschema:"the supplier the invoice was received from"`
	Items       []domain.Record `json:"items" jsonschema:"invoice lines with item_code, qty and rate"`
	PostingDate string          `json:"posting_date" jsonschema:"invoice posting date (YYYY-MM-DD)"`
	DueDate     string          `json:"due_date,omitempty" jsonschema:"payment due date (YYYY-MM-DD)"`
	Extra       domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreatePaymentInput is the input schema for create_payment.
type CreatePaymentInput struct {
	PaymentType     string        `json:"payment_type" jsonschema:"Receive or Pay"`
	PartyType       string        `json:"party_type" jsonschema:"Customer or Supplier"`
	Party           string        `json:"party" jsonschema:"the customer or supplier the payment is against"`
	PaidAmount      float64       `json:"paid_amount" jsonschema:"the payment amount"`
	PaidFromAccount string        `json:"paid_from_account,omitempty" jsonschema:"the account the payment is drawn from"`
	PaidToAccount   string        `json:"paid_to_account,omitempty" jsonschema:"the account the payment is deposited to"`
	PostingDate     string        `json:"posting_date,omitempty" jsonschema:"payment posting date (YYYY-MM-DD)"`
	Extra           domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// GetInvoiceInput is the input schema for get_invoice.
type GetInvoiceInput struct {
	InvoiceType string `json:"invoice_type" jsonschema:"sales or purchase"`
	InvoiceName string `json:"invoice_name" jsonschema:"the invoice name (ID)"`
}

// GetInvoicesListInput is the input schema for get_invoices_list.
type GetInvoicesListInput struct {
	InvoiceType string `json:"invoice_type" jsonschema:"sales or purchase"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of invoices to return (default 20)"`
}

// ListInput is the input schema for plain list tools.
type ListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// AccountInput is the input schema for get_account_balance.
type AccountInput struct {
	Account string `json:"account" jsonschema:"the ledger account name"`
}

// CreateCostCenterInput is the input schema for create_cost_center.
type CreateCostCenterInput struct {
	CostCenterName   string        `json:"cost_center_name" jsonschema:"the new cost center name"`
	ParentCostCenter string        `json:"parent_cost_center,omitempty" jsonschema:"parent cost center (defaults to the company root)"`
	Extra            domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateBudgetInput is the input schema for create_budget.
type CreateBudgetInput struct {
	CostCenter string          `json:"cost_center" jsonschema:"the cost center the budget applies to"`
	FiscalYear string          `json:"fiscal_year" jsonschema:"the fiscal year the budget applies to"`
	Accounts   []domain.Record `json:"accounts" jsonschema:"budget rows with account and budget_amount"`
	Extra      domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateFiscalYearInput is the input schema for create_fiscal_year.
type CreateFiscalYearInput struct {
	Year          string        `json:"year" jsonschema:"the fiscal year label, e.g. 2026-2027"`
	YearStartDate string        `json:"year_start_date" jsonschema:"first day of the year (YYYY-MM-DD)"`
	YearEndDate   string        `json:"year_end_date" jsonschema:"last day of the year (YYYY-MM-DD)"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// FinancialStatementsInput is the input schema for get_financial_statements.
type FinancialStatementsInput struct {
	Company    string `json:"company" jsonschema:"the company to report on"`
	ReportType string `json:"report_type" jsonschema:"Balance Sheet, Profit and Loss or Cash Flow"`
	FromDate   string `json:"from_date" jsonschema:"report period start (YYYY-MM-DD)"`
	ToDate     string `json:"to_date" jsonschema:"report period end (YYYY-MM-DD)"`
}

// StatementInput is the shared input schema for the individual
// financial statement tools.
type StatementInput struct {
	Company  string        `json:"company" jsonschema:"the company to report on"`
	FromDate string        `json:"from_date" jsonschema:"report period start (YYYY-MM-DD)"`
	ToDate   string        `json:"to_date" jsonschema:"report period end (YYYY-MM-DD)"`
	Extra    domain.Record `json:"extra,omitempty" jsonschema:"additional report filters"`
}

func (s *Server) registerAccountingTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_sales_invoice",
		Description: "Create a draft sales invoice for a customer",
	}, s.handleCreateSalesInvoice)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "approve_sales_invoice",
		Description: "Submit a draft sales invoice so it takes accounting effect",
	}, s.handleApproveSalesInvoice)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_purchase_invoice",
		Description: "Create a draft purchase invoice for a supplier",
	}, s.handleCreatePurchaseInvoice)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_payment",
		Description: "Record a payment entry against a customer or supplier",
	}, s.handleCreatePayment)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_invoice",
		Description: "Fetch a single sales or purchase invoice",
	}, s.handleGetInvoice)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_invoices_list",
		Description: "List sales or purchase invoices",
	}, s.handleGetInvoicesList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_payments_list",
		Description: "List payment entries",
	}, s.handleGetPaymentsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_account_balance",
		Description: "Report the balance of a ledger account",
	}, s.handleGetAccountBalance)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_cost_center",
		Description: "Create a cost center",
	}, s.handleCreateCostCenter)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_budget",
		Description: "Create a budget for a cost center and fiscal year",
	}, s.handleCreateBudget)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_fiscal_year",
		Description: "Create a fiscal year",
	}, s.handleCreateFiscalYear)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_financial_statements",
		Description: "Run a financial statement report by type",
	}, s.handleGetFinancialStatements)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_balance_sheet",
		Description: "Run the Balance Sheet report",
	}, s.handleGetBalanceSheet)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_profit_and_loss",
		Description: "Run the Profit and Loss Statement report",
	}, s.handleGetProfitAndLoss)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_income_statement",
		Description: "Run the income statement (alias of get_profit_and_loss)",
	}, s.handleGetIncomeStatement)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_cash_flow_statement",
		Description: "Run the Cash Flow report",
	}, s.handleGetCashFlow)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_trial_balance",
		Description: "Run the Trial Balance report",
	}, s.handleGetTrialBalance)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_general_ledger",
		Description: "Run the General Ledger report",
	}, s.handleGetGeneralLedger)
}

func (s *Server) handleCreateSalesInvoice(ctx context.Context, _ *mcp.CallToolRequest, in CreateSalesInvoiceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.CreateSalesInvoice(ctx, in.Customer, in.Items, in.PostingDate, in.DueDate, in.Extra)
	return s.finish("create_sales_invoice", start, res)
}

func (s *Server) handleApproveSalesInvoice(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.ApproveSalesInvoice(ctx, in.Name)
	return s.finish("approve_sales_invoice", start, res)
}

func (s *Server) handleCreatePurchaseInvoice(ctx context.Context, _ *mcp.CallToolRequest, in CreatePurchaseInvoiceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.CreatePurchaseInvoice(ctx, in.Supplier, in.Items, in.PostingDate, in.DueDate, in.Extra)
	return s.finish("create_purchase_invoice", start, res)
}

func (s *Server) handleCreatePayment(ctx context.Context, _ *mcp.CallToolRequest, in CreatePaymentInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.CreatePayment(ctx, in.PaymentType, in.PartyType, in.Party, in.PaidAmount, in.PaidFromAccount, in.PaidToAccount, in.PostingDate, in.Extra)
	return s.finish("create_payment", start, res)
}

func (s *Server) handleGetInvoice(ctx context.Context, _ *mcp.CallToolRequest, in GetInvoiceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetInvoice(ctx, in.InvoiceType, in.InvoiceName)
	return s.finish("get_invoice", start, res)
}

func (s *Server) handleGetInvoicesList(ctx context.Context, _ *mcp.CallToolRequest, in GetInvoicesListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetInvoicesList(ctx, in.InvoiceType, in.Limit)
	return s.finish("get_invoices_list", start, res)
}

func (s *Server) handleGetPaymentsList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetPaymentsList(ctx, in.Limit)
	return s.finish("get_payments_list", start, res)
}

func (s *Server) handleGetAccountBalance(ctx context.Context, _ *mcp.CallToolRequest, in AccountInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetAccountBalance(ctx, in.Account)
	return s.finish("get_account_balance", start, res)
}

func (s *Server) handleCreateCostCenter(ctx context.Context, _ *mcp.CallToolRequest, in CreateCostCenterInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.CreateCostCenter(ctx, in.CostCenterName, in.ParentCostCenter, in.Extra)
	return s.finish("create_cost_center", start, res)
}

func (s *Server) handleCreateBudget(ctx context.Context, _ *mcp.CallToolRequest, in CreateBudgetInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.CreateBudget(ctx, in.CostCenter, in.FiscalYear, in.Accounts, in.Extra)
	return s.finish("create_budget", start, res)
}

func (s *Server) handleCreateFiscalYear(ctx context.Context, _ *mcp.CallToolRequest, in CreateFiscalYearInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.CreateFiscalYear(ctx, in.Year, in.YearStartDate, in.YearEndDate, in.Extra)
	return s.finish("create_fiscal_year", start, res)
}

func (s *Server) handleGetFinancialStatements(ctx context.Context, _ *mcp.CallToolRequest, in FinancialStatementsInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetFinancialStatements(ctx, in.Company, in.ReportType, in.FromDate, in.ToDate)
	return s.finish("get_financial_statements", start, res)
}

func (s *Server) handleGetBalanceSheet(ctx context.Context, _ *mcp.CallToolRequest, in StatementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetBalanceSheet(ctx, in.Company, in.FromDate, in.ToDate, in.Extra)
	return s.finish("get_balance_sheet", start, res)
}

func (s *Server) handleGetProfitAndLoss(ctx context.Context, _ *mcp.CallToolRequest, in StatementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetProfitAndLoss(ctx, in.Company, in.FromDate, in.ToDate, in.Extra)
	return s.finish("get_profit_and_loss", start, res)
}

func (s *Server) handleGetIncomeStatement(ctx context.Context, _ *mcp.CallToolRequest, in StatementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetProfitAndLoss(ctx, in.Company, in.FromDate, in.ToDate, in.Extra)
	return s.finish("get_income_statement", start, res)
}

func (s *Server) handleGetCashFlow(ctx context.Context, _ *mcp.CallToolRequest, in StatementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetCashFlow(ctx, in.Company, in.FromDate, in.ToDate, in.Extra)
	return s.finish("get_cash_flow_statement", start, res)
}

func (s *Server) handleGetTrialBalance(ctx context.Context, _ *mcp.CallToolRequest, in StatementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetTrialBalance(ctx, in.Company, in.FromDate, in.ToDate, in.Extra)
	return s.finish("get_trial_balance", start, res)
}

func (s *Server) handleGetGeneralLedger(ctx context.Context, _ *mcp.CallToolRequest, in StatementInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Accounting.GetGeneralLedger(ctx, in.Company, in.FromDate, in.ToDate, in.Extra)
	return s.finish("get_general_ledger", start, res)
}
