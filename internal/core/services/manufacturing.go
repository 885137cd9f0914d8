package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure ManufacturingService implements the interface.
var _ driving.ManufacturingService = (*ManufacturingService)(nil)

// ManufacturingService handles BOMs, work orders and production
// planning.
type ManufacturingService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewManufacturingService creates a new manufacturing service.
func NewManufacturingService(client driven.ERPClient, log *zap.Logger) *ManufacturingService {
	return &ManufacturingService{client: client, log: log}
}

func (s *ManufacturingService) CreateBOM(ctx context.Context, item string, items []domain.Record, quantity float64, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating BOM", zap.String("item", item))

	if quantity == 0 {
		quantity = 1
	}
	rec := domain.Record{"item": item, "items": items, "quantity": quantity}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeBOM)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeBOM, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "BOM created successfully")
}

func (s *ManufacturingService) CreateWorkOrder(ctx context.Context, productionItem, bomNo string, qty float64, plannedStartDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating work order",
		zap.String("production_item", productionItem),
		zap.Float64("qty", qty))

	rec := domain.Record{
		"production_item": productionItem,
		"bom_no":          bomNo,
		"qty":             qty,
	}
	setIfNotEmpty(rec, "planned_start_date", plannedStartDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeWorkOrder)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeWorkOrder, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Work Order created successfully")
}

func (s *ManufacturingService) CreateProductionPlan(ctx context.Context, company, forWarehouse string, items []domain.Record, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating production plan", zap.String("company", company))

	rec := domain.Record{
		"company":       company,
		"for_warehouse": forWarehouse,
		"items":         items,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeProductionPlan)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeProductionPlan, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Production Plan created successfully")
}

func (s *ManufacturingService) CreateJobCard(ctx context.Context, workOrder, operation, workstation string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating job card", zap.String("work_order", workOrder))

	rec := domain.Record{
		"work_order":  workOrder,
		"operation":   operation,
		"workstation": workstation,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeJobCard)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeJobCard, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Job Card created successfully")
}

func (s *ManufacturingService) CreateQualityInspection(ctx context.Context, inspectionType, referenceType, referenceName, itemCode string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating quality inspection", zap.String("item_code", itemCode))

	rec := domain.Record{
		"inspection_type": inspectionType,
		"reference_type":  referenceType,
		"reference_name":  referenceName,
		"item_code":       itemCode,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeQualityInspection)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeQualityInspection, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Quality Inspection created successfully")
}

// StartWorkOrder submits the work order, which moves production from
// planning to in-progress.
func (s *ManufacturingService) StartWorkOrder(ctx context.Context, workOrderName string) *domain.OperationResult {
	s.log.Info("starting work order", zap.String("work_order", workOrderName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypeWorkOrder, workOrderName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Work Order started successfully")
}

func (s *ManufacturingService) CompleteWorkOrder(ctx context.Context, workOrderName string) *domain.OperationResult {
	s.log.Info("completing work order", zap.String("work_order", workOrderName))

	result, err := s.client.UpdateDocument(ctx, domain.DocTypeWorkOrder, workOrderName, domain.Record{"status": "Completed"})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Work Order completed successfully")
}

func (s *ManufacturingService) GetWorkOrdersList(ctx context.Context, status string, limit int) *domain.OperationResult {
	s.log.Info("getting work orders list", zap.Int("limit", limit))

	var filters []domain.Filter
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "production_item", "qty", "status", "planned_start_date"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeWorkOrder, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d work orders", len(result)))
}

func (s *ManufacturingService) GetBOMList(ctx context.Context, item string, limit int) *domain.OperationResult {
	s.log.Info("getting BOM list", zap.Int("limit", limit))

	var filters []domain.Filter
	if item != "" {
		filters = append(filters, domain.Eq("item", item))
	}

	fields := []string{"name", "item", "quantity", "is_active", "is_default"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeBOM, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d BOMs", len(result)))
}
