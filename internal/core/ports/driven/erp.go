package driven

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// ERPClient talks to a single ERPNext instance over its REST API.
// Records crossing this boundary are already in DocType vocabulary;
// field mapping happens in core before dispatch.
//
// Implementations return plain errors; core classifies them into the
// operation error taxonomy at the envelope boundary.
type ERPClient interface {
	// CreateDocument inserts a new document and returns the stored
	// version, including the server-assigned name.
	CreateDocument(ctx context.Context, doctype domain.DocType, doc domain.Record) (domain.Record, error)

	// GetDocument fetches one document by name.
	GetDocument(ctx context.Context, doctype domain.DocType, name string) (domain.Record, error)

	// UpdateDocument applies a partial update. The implementation
	// fetches the current document, overlays the given fields, and
	// writes the merged document back, so child tables survive updates
	// that do not touch them.
	UpdateDocument(ctx context.Context, doctype domain.DocType, name string, fields domain.Record) (domain.Record, error)

	// DeleteDocument removes a document by name.
	DeleteDocument(ctx context.Context, doctype domain.DocType, name string) error

	// SubmitDocument transitions a submittable document from Draft to
	// Submitted.
	SubmitDocument(ctx context.Context, doctype domain.DocType, name string) (domain.Record, error)

	// CancelDocument transitions a submitted document to Cancelled.
	CancelDocument(ctx context.Context, doctype domain.DocType, name string) (domain.Record, error)

	// ListDocuments returns documents matching the filters. A nil
	// fields slice requests the server default field set; limit <= 0
	// means the server default page size.
	ListDocuments(ctx context.Context, doctype domain.DocType, filters []domain.Filter, fields []string, limit int) ([]domain.Record, error)

	// CallMethod invokes a whitelisted server-side method with the
	// given arguments and returns the raw response payload.
	CallMethod(ctx context.Context, method string, args domain.Record) (domain.Record, error)

	// RunReport executes a named report with optional filters. When the
	// report engine cannot run it, implementations degrade through
	// documented fallbacks rather than failing outright.
	RunReport(ctx context.Context, reportName string, filters domain.Record) (domain.Record, error)
}
