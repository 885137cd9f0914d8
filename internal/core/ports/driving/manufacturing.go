package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// ManufacturingService covers BOMs, work orders, production plans, job
// cards and quality inspections.
type ManufacturingService interface {
	// CreateBOM creates a bill of materials. quantity defaults to 1
	// when zero.
	CreateBOM(ctx context.Context, item string, items []domain.Record, quantity float64, extra domain.Record) *domain.OperationResult

	CreateWorkOrder(ctx context.Context, productionItem, bomNo string, qty float64, plannedStartDate string, extra domain.Record) *domain.OperationResult

	CreateProductionPlan(ctx context.Context, company, forWarehouse string, items []domain.Record, extra domain.Record) *domain.OperationResult

	CreateJobCard(ctx context.Context, workOrder, operation, workstation string, extra domain.Record) *domain.OperationResult

	// CreateQualityInspection records an inspection. inspectionType is
	// "Incoming", "Outgoing" or "In Process".
	CreateQualityInspection(ctx context.Context, inspectionType, referenceType, referenceName, itemCode string, extra domain.Record) *domain.OperationResult

	// StartWorkOrder submits the work order, moving it into production.
	StartWorkOrder(ctx context.Context, workOrderName string) *domain.OperationResult

	// CompleteWorkOrder marks the work order status Completed.
	CompleteWorkOrder(ctx context.Context, workOrderName string) *domain.OperationResult

	GetWorkOrdersList(ctx context.Context, status string, limit int) *domain.OperationResult

	GetBOMList(ctx context.Context, item string, limit int) *domain.OperationResult
}
