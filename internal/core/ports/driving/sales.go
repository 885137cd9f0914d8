package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// SalesService covers customers, sales orders, quotations, delivery
// notes and sales returns.
type SalesService interface {
	CreateSalesOrder(ctx context.Context, customer string, items []domain.Record, deliveryDate string, extra domain.Record) *domain.OperationResult

	// CreateCustomer creates a customer master. customerType defaults
	// to "Company" when empty.
	CreateCustomer(ctx context.Context, customerName, customerType, email, phone string, extra domain.Record) *domain.OperationResult

	// CreateQuotation quotes to a customer or lead. quotationTo is
	// "Customer" or "Lead".
	CreateQuotation(ctx context.Context, quotationTo, partyName string, items []domain.Record, validTill string, extra domain.Record) *domain.OperationResult

	CreateDeliveryNote(ctx context.Context, customer string, items []domain.Record, postingDate string, extra domain.Record) *domain.OperationResult

	// CreateSalesReturn records a return as a delivery note with
	// is_return set, linked to the original document.
	CreateSalesReturn(ctx context.Context, returnAgainst string, items []domain.Record, extra domain.Record) *domain.OperationResult

	SubmitDeliveryNote(ctx context.Context, dnName string) *domain.OperationResult

	GetSalesOrder(ctx context.Context, soName string) *domain.OperationResult

	GetCustomer(ctx context.Context, customerName string) *domain.OperationResult

	GetCustomersList(ctx context.Context, limit int) *domain.OperationResult

	GetSalesOrdersList(ctx context.Context, limit int) *domain.OperationResult

	GetDeliveryNotesList(ctx context.Context, customer, status string, limit int) *domain.OperationResult

	SearchCustomers(ctx context.Context, query string, limit int) *domain.OperationResult

	ApproveSalesOrder(ctx context.Context, soName string) *domain.OperationResult
}
