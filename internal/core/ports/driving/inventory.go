package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// InventoryService covers items, warehouses, stock entries, pricing and
// batch/serial tracking.
type InventoryService interface {
	// CreateItem creates an item master. stockUOM defaults to "Nos"
	// when empty.
	CreateItem(ctx context.Context, itemCode, itemName, itemGroup, stockUOM string, extra domain.Record) *domain.OperationResult

	// CreateWarehouse creates a warehouse. warehouseType defaults to
	// "Stock" when empty.
	CreateWarehouse(ctx context.Context, warehouseName, warehouseType string, extra domain.Record) *domain.OperationResult

	// CreateStockEntry records a stock movement. stockEntryType is
	// "Material Issue", "Material Receipt" or "Material Transfer".
	CreateStockEntry(ctx context.Context, stockEntryType string, items []domain.Record, postingDate string, extra domain.Record) *domain.OperationResult

	SubmitStockEntry(ctx context.Context, entryName string) *domain.OperationResult

	GetItem(ctx context.Context, itemCode string) *domain.OperationResult

	GetItemsList(ctx context.Context, limit int) *domain.OperationResult

	SearchItems(ctx context.Context, query string, limit int) *domain.OperationResult

	// GetStockBalance reports stock on hand. The hosted API exposes no
	// balance endpoint, so this returns a zeroed placeholder payload.
	GetStockBalance(ctx context.Context, itemCode, warehouse string) *domain.OperationResult

	GetWarehousesList(ctx context.Context, limit int) *domain.OperationResult

	GetStockEntriesList(ctx context.Context, limit int) *domain.OperationResult

	CreateItemPrice(ctx context.Context, itemCode, priceList string, priceListRate float64, extra domain.Record) *domain.OperationResult

	CreatePriceList(ctx context.Context, priceListName, currency string, extra domain.Record) *domain.OperationResult

	CreateBatch(ctx context.Context, batchID, item string, extra domain.Record) *domain.OperationResult

	CreateSerialNo(ctx context.Context, serialNo, itemCode string, extra domain.Record) *domain.OperationResult

	// GetStockReport lists stock ledger entries, optionally scoped to a
	// warehouse.
	GetStockReport(ctx context.Context, warehouse, itemGroup string, limit int) *domain.OperationResult

	GetItemPrices(ctx context.Context, itemCode, priceList string) *domain.OperationResult
}
