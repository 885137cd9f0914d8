package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure SalesService implements the interface.
var _ driving.SalesService = (*SalesService)(nil)

// SalesService handles customers, sales orders, quotations and
// deliveries.
type SalesService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewSalesService creates a new sales service.
func NewSalesService(client driven.ERPClient, log *zap.Logger) *SalesService {
	return &SalesService{client: client, log: log}
}

func (s *SalesService) CreateSalesOrder(ctx context.Context, customer string, items []domain.Record, deliveryDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating sales order", zap.String("customer", customer))

	rec := domain.Record{"customer": customer, "items": items}
	setIfNotEmpty(rec, "delivery_date", deliveryDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeSalesOrder)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSalesOrder, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales order created successfully")
}

func (s *SalesService) CreateCustomer(ctx context.Context, customerName, customerType, email, phone string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating customer", zap.String("customer", customerName))

	rec := domain.Record{
		"customer_name": customerName,
		"customer_type": orDefault(customerType, "Company"),
	}
	setIfNotEmpty(rec, "email_id", email)
	setIfNotEmpty(rec, "mobile_no", phone)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeCustomer)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeCustomer, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Customer created successfully")
}

func (s *SalesService) CreateQuotation(ctx context.Context, quotationTo, partyName string, items []domain.Record, validTill string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating quotation",
		zap.String("quotation_to", quotationTo),
		zap.String("party", partyName))

	rec := domain.Record{
		"quotation_to": quotationTo,
		"party_name":   partyName,
		"items":        items,
	}
	setIfNotEmpty(rec, "valid_till", validTill)
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeQuotation)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeQuotation, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Quotation created successfully")
}

func (s *SalesService) CreateDeliveryNote(ctx context.Context, customer string, items []domain.Record, postingDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating delivery note", zap.String("customer", customer))

	rec := domain.Record{"customer": customer, "items": items}
	setIfNotEmpty(rec, "posting_date", postingDate)
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeDeliveryNote)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeDeliveryNote, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Delivery Note created successfully")
}

func (s *SalesService) CreateSalesReturn(ctx context.Context, returnAgainst string, items []domain.Record, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating sales return", zap.String("return_against", returnAgainst))

	// A return is a delivery note with negative effect on stock.
	rec := domain.Record{
		"is_return":      1,
		"return_against": returnAgainst,
		"items":          items,
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeDeliveryNote)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeDeliveryNote, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales Return created successfully")
}

func (s *SalesService) SubmitDeliveryNote(ctx context.Context, dnName string) *domain.OperationResult {
	s.log.Info("submitting delivery note", zap.String("delivery_note", dnName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypeDeliveryNote, dnName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Delivery Note submitted successfully")
}

func (s *SalesService) GetSalesOrder(ctx context.Context, soName string) *domain.OperationResult {
	s.log.Info("getting sales order", zap.String("sales_order", soName))

	result, err := s.client.GetDocument(ctx, domain.DocTypeSalesOrder, soName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales order retrieved successfully")
}

func (s *SalesService) GetCustomer(ctx context.Context, customerName string) *domain.OperationResult {
	s.log.Info("getting customer", zap.String("customer", customerName))

	result, err := s.client.GetDocument(ctx, domain.DocTypeCustomer, customerName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Customer retrieved successfully")
}

func (s *SalesService) GetCustomersList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting customers list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeCustomer, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Customers retrieved successfully")
}

func (s *SalesService) GetSalesOrdersList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting sales orders list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeSalesOrder, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales orders retrieved successfully")
}

func (s *SalesService) GetDeliveryNotesList(ctx context.Context, customer, status string, limit int) *domain.OperationResult {
	s.log.Info("getting delivery notes list", zap.Int("limit", limit))

	var filters []domain.Filter
	if customer != "" {
		filters = append(filters, domain.Eq("customer", customer))
	}
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "customer", "posting_date", "grand_total", "status"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeDeliveryNote, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d delivery notes", len(result)))
}

func (s *SalesService) SearchCustomers(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching customers", zap.String("query", query))

	filters := []domain.Filter{domain.Like("name", "%"+query+"%")}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeCustomer, filters, nil, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found customers matching '%s'", query))
}

func (s *SalesService) ApproveSalesOrder(ctx context.Context, soName string) *domain.OperationResult {
	s.log.Info("approving sales order", zap.String("sales_order", soName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypeSalesOrder, soName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Sales order approved successfully")
}
