package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateSalesOrderInput is the input schema for create_sales_order.
type CreateSalesOrderInput struct {
	Customer     string          `json:"customer" jsonschema:"the customer placing the order"`
	Items        []domain.Record `json:"items" jsonschema:"order lines with item_code, qty and rate"`
	DeliveryDate string          `json:"delivery_date" jsonschema:"promised delivery date (YYYY-MM-DD)"`
	Extra        domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateCustomerInput is the input schema for create_customer.
type CreateCustomerInput struct {
	CustomerName string        `json:"customer_name" jsonschema:"the customer's display name"`
	CustomerType string        `json:"customer_type,omitempty" jsonschema:"Company or Individual (default Company)"`
	Email        string        `json:"email,omitempty" jsonschema:"primary email address"`
	Phone        string        `json:"phone,omitempty" jsonschema:"primary phone number"`
	Extra        domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateQuotationInput is the input schema for create_quotation.
type CreateQuotationInput struct {
	QuotationTo string          `json:"quotation_to" jsonschema:"Customer or Lead"`
	PartyName   string          `json:"party_name" jsonschema:"the customer or lead being quoted"`
	Items       []domain.Record `json:"items" jsonschema:"quotation lines with item_code, qty and rate"`
	ValidTill   string          `json:"valid_till,omitempty" jsonschema:"quotation expiry date (YYYY-MM-DD)"`
	Extra       domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateDeliveryNoteInput is the input schema for create_delivery_note.
type CreateDeliveryNoteInput struct {
	Customer    string          `json:"customer" jsonschema:"the customer receiving the goods"`
	Items       []domain.Record `json:"items" jsonschema:"delivery lines with item_code and qty"`
	PostingDate string          `json:"posting_date,omitempty" jsonschema:"delivery posting date (YYYY-MM-DD)"`
	Extra       domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateReturnInput is the input schema for the return tools.
type CreateReturnInput struct {
	ReturnAgainst string          `json:"return_against" jsonschema:"name of the original document being returned against"`
	Items         []domain.Record `json:"items" jsonschema:"returned lines with item_code and negative qty"`
	Extra         domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// GetDeliveryNotesListInput is the input schema for get_delivery_notes_list.
type GetDeliveryNotesListInput struct {
	Customer string `json:"customer,omitempty" jsonschema:"filter by customer"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// SearchInput is the shared input schema for the search tools.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to match against names"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of matches to return (default 10)"`
}

func (s *Server) registerSalesTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_sales_order",
		Description: "Create a draft sales order for a customer",
	}, s.handleCreateSalesOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_customer",
		Description: "Create a customer master record",
	}, s.handleCreateCustomer)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_quotation",
		Description: "Create a quotation for a customer or lead",
	}, s.handleCreateQuotation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_delivery_note",
		Description: "Create a delivery note for a customer",
	}, s.handleCreateDeliveryNote)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_sales_return",
		Description: "Record a sales return against a delivery note",
	}, s.handleCreateSalesReturn)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "submit_delivery_note",
		Description: "Submit a draft delivery note",
	}, s.handleSubmitDeliveryNote)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "approve_sales_order",
		Description: "Submit a draft sales order",
	}, s.handleApproveSalesOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sales_order",
		Description: "Fetch a single sales order",
	}, s.handleGetSalesOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_customer",
		Description: "Fetch a single customer",
	}, s.handleGetCustomer)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_customers_list",
		Description: "List customers",
	}, s.handleGetCustomersList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_sales_orders_list",
		Description: "List sales orders",
	}, s.handleGetSalesOrdersList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_delivery_notes_list",
		Description: "List delivery notes, optionally filtered by customer and status",
	}, s.handleGetDeliveryNotesList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_customers",
		Description: "Search customers by name",
	}, s.handleSearchCustomers)
}

func (s *Server) handleCreateSalesOrder(ctx context.Context, _ *mcp.CallToolRequest, in CreateSalesOrderInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.CreateSalesOrder(ctx, in.Customer, in.Items, in.DeliveryDate, in.Extra)
	return s.finish("create_sales_order", start, res)
}

func (s *Server) handleCreateCustomer(ctx context.Context, _ *mcp.CallToolRequest, in CreateCustomerInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.CreateCustomer(ctx, in.CustomerName, in.CustomerType, in.Email, in.Phone, in.Extra)
	return s.finish("create_customer", start, res)
}

func (s *Server) handleCreateQuotation(ctx context.Context, _ *mcp.CallToolRequest, in CreateQuotationInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.CreateQuotation(ctx, in.QuotationTo, in.PartyName, in.Items, in.ValidTill, in.Extra)
	return s.finish("create_quotation", start, res)
}

func (s *Server) handleCreateDeliveryNote(ctx context.Context, _ *mcp.CallToolRequest, in CreateDeliveryNoteInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.CreateDeliveryNote(ctx, in.Customer, in.Items, in.PostingDate, in.Extra)
	return s.finish("create_delivery_note", start, res)
}

func (s *Server) handleCreateSalesReturn(ctx context.Context, _ *mcp.CallToolRequest, in CreateReturnInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.CreateSalesReturn(ctx, in.ReturnAgainst, in.Items, in.Extra)
	return s.finish("create_sales_return", start, res)
}

func (s *Server) handleSubmitDeliveryNote(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.SubmitDeliveryNote(ctx, in.Name)
	return s.finish("submit_delivery_note", start, res)
}

func (s *Server) handleApproveSalesOrder(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.ApproveSalesOrder(ctx, in.Name)
	return s.finish("approve_sales_order", start, res)
}

func (s *Server) handleGetSalesOrder(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.GetSalesOrder(ctx, in.Name)
	return s.finish("get_sales_order", start, res)
}

func (s *Server) handleGetCustomer(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.GetCustomer(ctx, in.Name)
	return s.finish("get_customer", start, res)
}

func (s *Server) handleGetCustomersList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.GetCustomersList(ctx, in.Limit)
	return s.finish("get_customers_list", start, res)
}

func (s *Server) handleGetSalesOrdersList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.GetSalesOrdersList(ctx, in.Limit)
	return s.finish("get_sales_orders_list", start, res)
}

func (s *Server) handleGetDeliveryNotesList(ctx context.Context, _ *mcp.CallToolRequest, in GetDeliveryNotesListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.GetDeliveryNotesList(ctx, in.Customer, in.Status, in.Limit)
	return s.finish("get_delivery_notes_list", start, res)
}

func (s *Server) handleSearchCustomers(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Sales.SearchCustomers(ctx, in.Query, in.Limit)
	return s.finish("search_customers", start, res)
}
