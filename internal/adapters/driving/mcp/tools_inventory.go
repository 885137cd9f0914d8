package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateItemInput is the input schema for create_item.
type CreateItemInput struct {
	ItemCode  string        `json:"item_code" jsonschema:"unique item code"`
	ItemName  string        `json:"item_name" jsonschema:"the item's display name"`
	ItemGroup string        `json:"item_group" jsonschema:"the item group the item belongs to"`
	StockUOM  string        `json:"stock_uom,omitempty" jsonschema:"stock unit of measure (default Nos)"`
	Extra     domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateWarehouseInput is the input schema for create_warehouse.
type CreateWarehouseInput struct {
	WarehouseName string        `json:"warehouse_name" jsonschema:"the new warehouse name"`
	WarehouseType string        `json:"warehouse_type,omitempty" jsonschema:"warehouse type (default Stock)"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateStockEntryInput is the input schema for create_stock_entry.
type CreateStockEntryInput struct {
	StockEntryType string          `json:"stock_entry_type" jsonschema:"Material Issue, Material Receipt or Material Transfer"`
	Items          []domain.Record `json:"items" jsonschema:"movement lines with item_code, qty and warehouse fields"`
	PostingDate    string          `json:"posting_date,omitempty" jsonschema:"movement posting date (YYYY-MM-DD)"`
	Extra          domain.Record   `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// StockBalanceInput is the input schema for get_stock_balance.
type StockBalanceInput struct {
	ItemCode  string `json:"item_code" jsonschema:"the item to report on"`
	Warehouse string `json:"warehouse,omitempty" jsonschema:"restrict to one warehouse"`
}

// CreateItemPriceInput is the input schema for create_item_price.
type CreateItemPriceInput struct {
	ItemCode      string        `json:"item_code" jsonschema:"the item being priced"`
	PriceList     string        `json:"price_list" jsonschema:"the price list the rate belongs to"`
	PriceListRate float64       `json:"price_list_rate" jsonschema:"the rate in the price list currency"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreatePriceListInput is the input schema for create_price_list.
type CreatePriceListInput struct {
	PriceListName string        `json:"price_list_name" jsonschema:"the new price list name"`
	Currency      string        `json:"currency" jsonschema:"ISO currency code, e.g. USD"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateBatchInput is the input schema for create_batch.
type CreateBatchInput struct {
	BatchID string        `json:"batch_id" jsonschema:"unique batch identifier"`
	Item    string        `json:"item" jsonschema:"the item the batch tracks"`
	Extra   domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateSerialNoInput is the input schema for create_serial_no.
type CreateSerialNoInput struct {
	SerialNo string        `json:"serial_no" jsonschema:"unique serial number"`
	ItemCode string        `json:"item_code" jsonschema:"the item the serial number tracks"`
	Extra    domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// StockReportInput is the input schema for get_stock_report.
type StockReportInput struct {
	Warehouse string `json:"warehouse,omitempty" jsonschema:"restrict to one warehouse"`
	ItemGroup string `json:"item_group,omitempty" jsonschema:"restrict to one item group"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of ledger rows to return (default 50)"`
}

// GetItemPricesInput is the input schema for get_item_prices.
type GetItemPricesInput struct {
	ItemCode  string `json:"item_code" jsonschema:"the item to look up"`
	PriceList string `json:"price_list,omitempty" jsonschema:"restrict to one price list"`
}

func (s *Server) registerInventoryTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_item",
		Description: "Create an item master record",
	}, s.handleCreateItem)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_warehouse",
		Description: "Create a warehouse",
	}, s.handleCreateWarehouse)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_stock_entry",
		Description: "Record a stock movement between warehouses",
	}, s.handleCreateStockEntry)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "submit_stock_entry",
		Description: "Submit a draft stock entry",
	}, s.handleSubmitStockEntry)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_item",
		Description: "Fetch a single item",
	}, s.handleGetItem)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_items_list",
		Description: "List items",
	}, s.handleGetItemsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_items",
		Description: "Search items by name",
	}, s.handleSearchItems)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_stock_balance",
		Description: "Report stock on hand for an item",
	}, s.handleGetStockBalance)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_warehouses_list",
		Description: "List warehouses",
	}, s.handleGetWarehousesList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_stock_entries_list",
		Description: "List stock entries",
	}, s.handleGetStockEntriesList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_item_price",
		Description: "Set an item's rate on a price list",
	}, s.handleCreateItemPrice)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_price_list",
		Description: "Create a price list",
	}, s.handleCreatePriceList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_batch",
		Description: "Create a batch for batch-tracked stock",
	}, s.handleCreateBatch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_serial_no",
		Description: "Create a serial number for serialised stock",
	}, s.handleCreateSerialNo)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_stock_report",
		Description: "List stock ledger entries",
	}, s.handleGetStockReport)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_item_prices",
		Description: "List price list rates for an item",
	}, s.handleGetItemPrices)
}

func (s *Server) handleCreateItem(ctx context.Context, _ *mcp.CallToolRequest, in CreateItemInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreateItem(ctx, in.ItemCode, in.ItemName, in.ItemGroup, in.StockUOM, in.Extra)
	return s.finish("create_item", start, res)
}

func (s *Server) handleCreateWarehouse(ctx context.Context, _ *mcp.CallToolRequest, in CreateWarehouseInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreateWarehouse(ctx, in.WarehouseName, in.WarehouseType, in.Extra)
	return s.finish("create_warehouse", start, res)
}

func (s *Server) handleCreateStockEntry(ctx context.Context, _ *mcp.CallToolRequest, in CreateStockEntryInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreateStockEntry(ctx, in.StockEntryType, in.Items, in.PostingDate, in.Extra)
	return s.finish("create_stock_entry", start, res)
}

func (s *Server) handleSubmitStockEntry(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.SubmitStockEntry(ctx, in.Name)
	return s.finish("submit_stock_entry", start, res)
}

func (s *Server) handleGetItem(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetItem(ctx, in.Name)
	return s.finish("get_item", start, res)
}

func (s *Server) handleGetItemsList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetItemsList(ctx, in.Limit)
	return s.finish("get_items_list", start, res)
}

func (s *Server) handleSearchItems(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.SearchItems(ctx, in.Query, in.Limit)
	return s.finish("search_items", start, res)
}

func (s *Server) handleGetStockBalance(ctx context.Context, _ *mcp.CallToolRequest, in StockBalanceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetStockBalance(ctx, in.ItemCode, in.Warehouse)
	return s.finish("get_stock_balance", start, res)
}

func (s *Server) handleGetWarehousesList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetWarehousesList(ctx, in.Limit)
	return s.finish("get_warehouses_list", start, res)
}

func (s *Server) handleGetStockEntriesList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetStockEntriesList(ctx, in.Limit)
	return s.finish("get_stock_entries_list", start, res)
}

func (s *Server) handleCreateItemPrice(ctx context.Context, _ *mcp.CallToolRequest, in CreateItemPriceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreateItemPrice(ctx, in.ItemCode, in.PriceList, in.PriceListRate, in.Extra)
	return s.finish("create_item_price", start, res)
}

func (s *Server) handleCreatePriceList(ctx context.Context, _ *mcp.CallToolRequest, in CreatePriceListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreatePriceList(ctx, in.PriceListName, in.Currency, in.Extra)
	return s.finish("create_price_list", start, res)
}

func (s *Server) handleCreateBatch(ctx context.Context, _ *mcp.CallToolRequest, in CreateBatchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreateBatch(ctx, in.BatchID, in.Item, in.Extra)
	return s.finish("create_batch", start, res)
}

func (s *Server) handleCreateSerialNo(ctx context.Context, _ *mcp.CallToolRequest, in CreateSerialNoInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.CreateSerialNo(ctx, in.SerialNo, in.ItemCode, in.Extra)
	return s.finish("create_serial_no", start, res)
}

func (s *Server) handleGetStockReport(ctx context.Context, _ *mcp.CallToolRequest, in StockReportInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetStockReport(ctx, in.Warehouse, in.ItemGroup, in.Limit)
	return s.finish("get_stock_report", start, res)
}

func (s *Server) handleGetItemPrices(ctx context.Context, _ *mcp.CallToolRequest, in GetItemPricesInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Inventory.GetItemPrices(ctx, in.ItemCode, in.PriceList)
	return s.finish("get_item_prices", start, res)
}
