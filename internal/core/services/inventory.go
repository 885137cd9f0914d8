package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure InventoryService implements the interface.
var _ driving.InventoryService = (*InventoryService)(nil)

// InventoryService handles items, warehouses, stock movements, pricing
// and batch/serial tracking.
type InventoryService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(client driven.ERPClient, log *zap.Logger) *InventoryService {
	return &InventoryService{client: client, log: log}
}

func (s *InventoryService) CreateItem(ctx context.Context, itemCode, itemName, itemGroup, stockUOM string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating item", zap.String("item_code", itemCode))

	rec := domain.Record{
		"item_code":  itemCode,
		"item_name":  itemName,
		"item_group": itemGroup,
		"stock_uom":  orDefault(stockUOM, "Nos"),
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeItem)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeItem, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Item created successfully")
}

func (s *InventoryService) CreateWarehouse(ctx context.Context, warehouseName, warehouseType string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating warehouse", zap.String("warehouse", warehouseName))

	rec := domain.Record{
		"warehouse_name": warehouseName,
		"warehouse_type": orDefault(warehouseType, "Stock"),
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeWarehouse)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeWarehouse, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Warehouse created successfully")
}

func (s *InventoryService) CreateStockEntry(ctx context.Context, stockEntryType string, items []domain.Record, postingDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating stock entry", zap.String("entry_type", stockEntryType))

	rec := domain.Record{
		"stock_entry_type": stockEntryType,
		"items":            items,
	}
	setIfNotEmpty(rec, "posting_date", postingDate)
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeStockEntry)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeStockEntry, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Stock entry created successfully")
}

func (s *InventoryService) SubmitStockEntry(ctx context.Context, entryName string) *domain.OperationResult {
	s.log.Info("submitting stock entry", zap.String("stock_entry", entryName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypeStockEntry, entryName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Stock entry submitted successfully")
}

func (s *InventoryService) GetItem(ctx context.Context, itemCode string) *domain.OperationResult {
	s.log.Info("getting item", zap.String("item_code", itemCode))

	result, err := s.client.GetDocument(ctx, domain.DocTypeItem, itemCode)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Item retrieved successfully")
}

func (s *InventoryService) GetItemsList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting items list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeItem, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Items retrieved successfully")
}

func (s *InventoryService) SearchItems(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching items", zap.String("query", query))

	filters := []domain.Filter{domain.Like("name", "%"+query+"%")}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeItem, filters, nil, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found items matching '%s'", query))
}

// GetStockBalance has no remote endpoint on the standard REST surface,
// so it reports a zero balance with an explanatory payload.
func (s *InventoryService) GetStockBalance(ctx context.Context, itemCode, warehouse string) *domain.OperationResult {
	s.log.Info("getting stock balance", zap.String("item_code", itemCode))

	result := domain.Record{
		"item_code":   itemCode,
		"warehouse":   orDefault(warehouse, "All Warehouses"),
		"balance_qty": 0.0,
		"message":     "This would require a custom ERPNext API method to get real stock balance",
	}
	return domain.Succeed(result, fmt.Sprintf("Stock balance retrieved for %s", itemCode))
}

func (s *InventoryService) GetWarehousesList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting warehouses list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeWarehouse, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Warehouses retrieved successfully")
}

func (s *InventoryService) GetStockEntriesList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting stock entries list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeStockEntry, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Stock entries retrieved successfully")
}

func (s *InventoryService) CreateItemPrice(ctx context.Context, itemCode, priceList string, priceListRate float64, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating item price",
		zap.String("item_code", itemCode),
		zap.String("price_list", priceList))

	rec := domain.Record{
		"item_code":       itemCode,
		"price_list":      priceList,
		"price_list_rate": priceListRate,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeItemPrice)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeItemPrice, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Item Price created successfully")
}

func (s *InventoryService) CreatePriceList(ctx context.Context, priceListName, currency string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating price list", zap.String("price_list", priceListName))

	rec := domain.Record{
		"price_list_name": priceListName,
		"currency":        currency,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypePriceList)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypePriceList, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Price List created successfully")
}

func (s *InventoryService) CreateBatch(ctx context.Context, batchID, item string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating batch", zap.String("batch_id", batchID), zap.String("item", item))

	rec := domain.Record{"batch_id": batchID, "item": item}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeBatch)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeBatch, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Batch created successfully")
}

func (s *InventoryService) CreateSerialNo(ctx context.Context, serialNo, itemCode string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating serial number",
		zap.String("serial_no", serialNo),
		zap.String("item_code", itemCode))

	rec := domain.Record{"serial_no": serialNo, "item_code": itemCode}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeSerialNo)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSerialNo, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Serial Number created successfully")
}

func (s *InventoryService) GetStockReport(ctx context.Context, warehouse, itemGroup string, limit int) *domain.OperationResult {
	s.log.Info("getting stock report", zap.Int("limit", limit))

	var filters []domain.Filter
	if warehouse != "" {
		filters = append(filters, domain.Eq("warehouse", warehouse))
	}

	fields := []string{"item_code", "warehouse", "actual_qty", "valuation_rate", "posting_date"}
	if limit <= 0 {
		limit = 50
	}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeStockLedgerEntry, filters, fields, limit)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d stock records", len(result)))
}

func (s *InventoryService) GetItemPrices(ctx context.Context, itemCode, priceList string) *domain.OperationResult {
	s.log.Info("getting item prices", zap.String("item_code", itemCode))

	filters := []domain.Filter{domain.Eq("item_code", itemCode)}
	if priceList != "" {
		filters = append(filters, domain.Eq("price_list", priceList))
	}

	fields := []string{"price_list", "price_list_rate", "valid_from", "valid_upto"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeItemPrice, filters, fields, 0)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d price records", len(result)))
}
