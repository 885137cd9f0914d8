package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreatePurchaseOrderInput is the input schema for create_purchase_order.
type CreatePurchaseOrderInput struct {
	Supplier     string          `json:"supplier" jsonschema:"the supplier the order is placed with"`
	Items        []domain.Record `json:"items" jsonschema:"order lines with item_code, qty and rate"`
	ScheduleDate string          `json:"schedule_date" jsonschema:"required-by date (YYYY-MM-DD)"`
	Extra        domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateSupplierInput is the input schema for create_supplier.
type CreateSupplierInput struct {
	SupplierName string        `json:"supplier_name" jsonschema:"the supplier's display name"`
	SupplierType string        `json:"supplier_type,omitempty" jsonschema:"Company or Individual (default Company)"`
	Email        string        `json:"email,omitempty" jsonschema:"primary email address"`
	Phone        string        `json:"phone,omitempty" jsonschema:"primary phone number"`
	Extra        domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateSupplierQuotationInput is the input schema for create_supplier_quotation.
type CreateSupplierQuotationInput struct {
	Supplier  string          `json:"supplier" jsonschema:"the quoting supplier"`
	Items     []domain.Record `json:"items" jsonschema:"quotation lines with item_code, qty and rate"`
	ValidTill string          `json:"valid_till,omitempty" jsonschema:"quotation expiry date (YYYY-MM-DD)"`
	Extra     domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreatePurchaseReceiptInput is the input schema for create_purchase_receipt.
type CreatePurchaseReceiptInput struct {
	Supplier      string          `json:"supplier" jsonschema:"the supplier the goods were received from"`
	Items         []domain.Record `json:"items" jsonschema:"receipt lines with item_code and qty"`
	PostingDate   string          `json:"posting_date,omitempty" jsonschema:"receipt posting date (YYYY-MM-DD)"`
	PurchaseOrder string          `json:"purchase_order,omitempty" jsonschema:"the purchase order being received against"`
	Extra         domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// GetPurchaseReceiptsListInput is the input schema for get_purchase_receipts_list.
type GetPurchaseReceiptsListInput struct {
	Supplier string `json:"supplier,omitempty" jsonschema:"filter by supplier"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

func (s *Server) registerPurchasingTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_purchase_order",
		Description: "Create a draft purchase order with a supplier",
	}, s.handleCreatePurchaseOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "approve_purchase_order",
		Description: "Submit a draft purchase order",
	}, s.handleApprovePurchaseOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_supplier",
		Description: "Create a supplier master record",
	}, s.handleCreateSupplier)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_supplier_quotation",
		Description: "Record a quotation received from a supplier",
	}, s.handleCreateSupplierQuotation)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_purchase_receipt",
		Description: "Record goods received from a supplier",
	}, s.handleCreatePurchaseReceipt)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_purchase_return",
		Description: "Record a purchase return against a receipt",
	}, s.handleCreatePurchaseReturn)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "submit_purchase_receipt",
		Description: "Submit a draft purchase receipt",
	}, s.handleSubmitPurchaseReceipt)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_purchase_order",
		Description: "Fetch a single purchase order",
	}, s.handleGetPurchaseOrder)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_purchase_orders_list",
		Description: "List purchase orders",
	}, s.handleGetPurchaseOrdersList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_supplier",
		Description: "Fetch a single supplier",
	}, s.handleGetSupplier)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_suppliers_list",
		Description: "List suppliers",
	}, s.handleGetSuppliersList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_supplier_quotations_list",
		Description: "List supplier quotations",
	}, s.handleGetSupplierQuotationsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_purchase_receipts_list",
		Description: "List purchase receipts, optionally filtered by supplier and status",
	}, s.handleGetPurchaseReceiptsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_suppliers",
		Description: "Search suppliers by name",
	}, s.handleSearchSuppliers)
}

func (s *Server) handleCreatePurchaseOrder(ctx context.Context, _ *mcp.CallToolRequest, in CreatePurchaseOrderInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.CreatePurchaseOrder(ctx, in.Supplier, in.Items, in.ScheduleDate, in.Extra)
	return s.finish("create_purchase_order", start, res)
}

func (s *Server) handleApprovePurchaseOrder(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.ApprovePurchaseOrder(ctx, in.Name)
	return s.finish("approve_purchase_order", start, res)
}

func (s *Server) handleCreateSupplier(ctx context.Context, _ *mcp.CallToolRequest, in CreateSupplierInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.CreateSupplier(ctx, in.SupplierName, in.SupplierType, in.Email, in.Phone, in.Extra)
	return s.finish("create_supplier", start, res)
}

func (s *Server) handleCreateSupplierQuotation(ctx context.Context, _ *mcp.CallToolRequest, in CreateSupplierQuotationInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.CreateSupplierQuotation(ctx, in.Supplier, in.Items, in.ValidTill, in.Extra)
	return s.finish("create_supplier_quotation", start, res)
}

func (s *Server) handleCreatePurchaseReceipt(ctx context.Context, _ *mcp.CallToolRequest, in CreatePurchaseReceiptInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.CreatePurchaseReceipt(ctx, in.Supplier, in.Items, in.PostingDate, in.PurchaseOrder, in.Extra)
	return s.finish("create_purchase_receipt", start, res)
}

func (s *Server) handleCreatePurchaseReturn(ctx context.Context, _ *mcp.CallToolRequest, in CreateReturnInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.CreatePurchaseReturn(ctx, in.ReturnAgainst, in.Items, in.Extra)
	return s.finish("create_purchase_return", start, res)
}

func (s *Server) handleSubmitPurchaseReceipt(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.SubmitPurchaseReceipt(ctx, in.Name)
	return s.finish("submit_purchase_receipt", start, res)
}

func (s *Server) handleGetPurchaseOrder(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.GetPurchaseOrder(ctx, in.Name)
	return s.finish("get_purchase_order", start, res)
}

func (s *Server) handleGetPurchaseOrdersList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.GetPurchaseOrdersList(ctx, in.Limit)
	return s.finish("get_purchase_orders_list", start, res)
}

func (s *Server) handleGetSupplier(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.GetSupplier(ctx, in.Name)
	return s.finish("get_supplier", start, res)
}

func (s *Server) handleGetSuppliersList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.GetSuppliersList(ctx, in.Limit)
	return s.finish("get_suppliers_list", start, res)
}

func (s *Server) handleGetSupplierQuotationsList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.GetSupplierQuotationsList(ctx, in.Limit)
	return s.finish("get_supplier_quotations_list", start, res)
}

func (s *Server) handleGetPurchaseReceiptsList(ctx context.Context, _ *mcp.CallToolRequest, in GetPurchaseReceiptsListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.GetPurchaseReceiptsList(ctx, in.Supplier, in.Status, in.Limit)
	return s.finish("get_purchase_receipts_list", start, res)
}

func (s *Server) handleSearchSuppliers(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Purchasing.SearchSuppliers(ctx, in.Query, in.Limit)
	return s.finish("search_suppliers", start, res)
}
