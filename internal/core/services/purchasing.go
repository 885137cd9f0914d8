package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure PurchasingService implements the interface.
var _ driving.PurchasingService = (*PurchasingService)(nil)

// PurchasingService handles suppliers, purchase orders and receipts.
type PurchasingService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewPurchasingService creates a new purchasing service.
func NewPurchasingService(client driven.ERPClient, log *zap.Logger) *PurchasingService {
	return &PurchasingService{client: client, log: log}
}

func (s *PurchasingService) CreatePurchaseOrder(ctx context.Context, supplier string, items []domain.Record, scheduleDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating purchase order", zap.String("supplier", supplier))

	rec := domain.Record{"supplier": supplier, "items": items}
	setIfNotEmpty(rec, "schedule_date", scheduleDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypePurchaseOrder)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypePurchaseOrder, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase order created successfully")
}

func (s *PurchasingService) ApprovePurchaseOrder(ctx context.Context, poName string) *domain.OperationResult {
	s.log.Info("approving purchase order", zap.String("purchase_order", poName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypePurchaseOrder, poName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase order approved successfully")
}

func (s *PurchasingService) CreateSupplier(ctx context.Context, supplierName, supplierType, email, phone string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating supplier", zap.String("supplier", supplierName))

	rec := domain.Record{
		"supplier_name": supplierName,
		"supplier_type": orDefault(supplierType, "Company"),
	}
	setIfNotEmpty(rec, "email_id", email)
	setIfNotEmpty(rec, "mobile_no", phone)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeSupplier)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSupplier, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Supplier created successfully")
}

func (s *PurchasingService) CreateSupplierQuotation(ctx context.Context, supplier string, items []domain.Record, validTill string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating supplier quotation", zap.String("supplier", supplier))

	rec := domain.Record{"supplier": supplier, "items": items}
	setIfNotEmpty(rec, "valid_till", validTill)
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeSupplierQuotation)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSupplierQuotation, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Supplier quotation created successfully")
}

func (s *PurchasingService) CreatePurchaseReceipt(ctx context.Context, supplier string, items []domain.Record, postingDate, purchaseOrder string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating purchase receipt", zap.String("supplier", supplier))

	rec := domain.Record{"supplier": supplier, "items": items}
	setIfNotEmpty(rec, "posting_date", postingDate)
	setIfNotEmpty(rec, "purchase_order", purchaseOrder)
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypePurchaseReceipt)

	result, err := s.client.CreateDocument(ctx, domain.DocTypePurchaseReceipt, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase receipt created successfully")
}

func (s *PurchasingService) CreatePurchaseReturn(ctx context.Context, returnAgainst string, items []domain.Record, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating purchase return", zap.String("return_against", returnAgainst))

	// A return is a purchase receipt with negative effect on stock.
	rec := domain.Record{
		"is_return":      1,
		"return_against": returnAgainst,
		"items":          items,
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypePurchaseReceipt)

	result, err := s.client.CreateDocument(ctx, domain.DocTypePurchaseReceipt, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase Return created successfully")
}

func (s *PurchasingService) SubmitPurchaseReceipt(ctx context.Context, prName string) *domain.OperationResult {
	s.log.Info("submitting purchase receipt", zap.String("purchase_receipt", prName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypePurchaseReceipt, prName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase Receipt submitted successfully")
}

func (s *PurchasingService) GetPurchaseOrder(ctx context.Context, poName string) *domain.OperationResult {
	s.log.Info("getting purchase order", zap.String("purchase_order", poName))

	result, err := s.client.GetDocument(ctx, domain.DocTypePurchaseOrder, poName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase order retrieved successfully")
}

func (s *PurchasingService) GetPurchaseOrdersList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting purchase orders list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypePurchaseOrder, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Purchase orders retrieved successfully")
}

func (s *PurchasingService) GetSupplier(ctx context.Context, supplierName string) *domain.OperationResult {
	s.log.Info("getting supplier", zap.String("supplier", supplierName))

	result, err := s.client.GetDocument(ctx, domain.DocTypeSupplier, supplierName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Supplier retrieved successfully")
}

func (s *PurchasingService) GetSuppliersList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting suppliers list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeSupplier, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Suppliers retrieved successfully")
}

func (s *PurchasingService) GetSupplierQuotationsList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting supplier quotations list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeSupplierQuotation, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Supplier quotations retrieved successfully")
}

func (s *PurchasingService) GetPurchaseReceiptsList(ctx context.Context, supplier, status string, limit int) *domain.OperationResult {
	s.log.Info("getting purchase receipts list", zap.Int("limit", limit))

	var filters []domain.Filter
	if supplier != "" {
		filters = append(filters, domain.Eq("supplier", supplier))
	}
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "supplier", "posting_date", "grand_total", "status"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypePurchaseReceipt, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d purchase receipts", len(result)))
}

func (s *PurchasingService) SearchSuppliers(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching suppliers", zap.String("query", query))

	filters := []domain.Filter{domain.Like("name", "%"+query+"%")}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeSupplier, filters, nil, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found suppliers matching '%s'", query))
}
