package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// PurchasingService covers suppliers, purchase orders, receipts and
// purchase returns.
type PurchasingService interface {
	CreatePurchaseOrder(ctx context.Context, supplier string, items []domain.Record, scheduleDate string, extra domain.Record) *domain.OperationResult

	ApprovePurchaseOrder(ctx context.Context, poName string) *domain.OperationResult

	// CreateSupplier creates a supplier master. supplierType defaults
	// to "Company" when empty.
	CreateSupplier(ctx context.Context, supplierName, supplierType, email, phone string, extra domain.Record) *domain.OperationResult

	CreateSupplierQuotation(ctx context.Context, supplier string, items []domain.Record, validTill string, extra domain.Record) *domain.OperationResult

	CreatePurchaseReceipt(ctx context.Context, supplier string, items []domain.Record, postingDate, purchaseOrder string, extra domain.Record) *domain.OperationResult

	// CreatePurchaseReturn records a return as a purchase receipt with
	// is_return set, linked to the original receipt.
	CreatePurchaseReturn(ctx context.Context, returnAgainst string, items []domain.Record, extra domain.Record) *domain.OperationResult

	SubmitPurchaseReceipt(ctx context.Context, prName string) *domain.OperationResult

	GetPurchaseOrder(ctx context.Context, poName string) *domain.OperationResult

	GetPurchaseOrdersList(ctx context.Context, limit int) *domain.OperationResult

	GetSupplier(ctx context.Context, supplierName string) *domain.OperationResult

	GetSuppliersList(ctx context.Context, limit int) *domain.OperationResult

	GetSupplierQuotationsList(ctx context.Context, limit int) *domain.OperationResult

	GetPurchaseReceiptsList(ctx context.Context, supplier, status string, limit int) *domain.OperationResult

	SearchSuppliers(ctx context.Context, query string, limit int) *domain.OperationResult
}
