package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
)

// --- Mock implementations ---

// erpCall records one call made against the mock client. The meaning of
// name and doc varies by op: for "call" name is the method path and doc
// the arguments, for "report" name is the report name and doc the
// filters.
type erpCall struct {
	op      string
	doctype domain.DocType
	name    string
	doc     domain.Record
	filters []domain.Filter
	fields  []string
	limit   int
}

// mockERPClient implements driven.ERPClient for testing. Every call is
// recorded; return values are configured per method. updateErrByName
// lets a test fail updates for specific documents only.
type mockERPClient struct {
	calls []erpCall

	createResult domain.Record
	createErr    error

	getResult domain.Record
	getErr    error

	updateResult    domain.Record
	updateErr       error
	updateErrByName map[string]error

	deleteErr error

	submitResult domain.Record
	submitErr    error

	cancelResult domain.Record
	cancelErr    error

	listResult []domain.Record
	listErr    error

	callResult domain.Record
	callErr    error

	reportResult domain.Record
	reportErr    error
}

var _ driven.ERPClient = (*mockERPClient)(nil)

func (m *mockERPClient) CreateDocument(_ context.Context, doctype domain.DocType, doc domain.Record) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "create", doctype: doctype, doc: doc})
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.createResult != nil {
		return m.createResult, nil
	}
	return doc, nil
}

func (m *mockERPClient) GetDocument(_ context.Context, doctype domain.DocType, name string) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "get", doctype: doctype, name: name})
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.getResult, nil
}

func (m *mockERPClient) UpdateDocument(_ context.Context, doctype domain.DocType, name string, fields domain.Record) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "update", doctype: doctype, name: name, doc: fields})
	if err, ok := m.updateErrByName[name]; ok {
		return nil, err
	}
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updateResult != nil {
		return m.updateResult, nil
	}
	return fields, nil
}

func (m *mockERPClient) DeleteDocument(_ context.Context, doctype domain.DocType, name string) error {
	m.calls = append(m.calls, erpCall{op: "delete", doctype: doctype, name: name})
	return m.deleteErr
}

func (m *mockERPClient) SubmitDocument(_ context.Context, doctype domain.DocType, name string) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "submit", doctype: doctype, name: name})
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.submitResult, nil
}

func (m *mockERPClient) CancelDocument(_ context.Context, doctype domain.DocType, name string) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "cancel", doctype: doctype, name: name})
	if m.cancelErr != nil {
		return nil, m.cancelErr
	}
	return m.cancelResult, nil
}

func (m *mockERPClient) ListDocuments(_ context.Context, doctype domain.DocType, filters []domain.Filter, fields []string, limit int) ([]domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "list", doctype: doctype, filters: filters, fields: fields, limit: limit})
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResult, nil
}

func (m *mockERPClient) CallMethod(_ context.Context, method string, args domain.Record) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "call", name: method, doc: args})
	if m.callErr != nil {
		return nil, m.callErr
	}
	return m.callResult, nil
}

func (m *mockERPClient) RunReport(_ context.Context, reportName string, filters domain.Record) (domain.Record, error) {
	m.calls = append(m.calls, erpCall{op: "report", name: reportName, doc: filters})
	if m.reportErr != nil {
		return nil, m.reportErr
	}
	return m.reportResult, nil
}

// lastCall returns the most recent recorded call.
func (m *mockERPClient) lastCall() erpCall {
	return m.calls[len(m.calls)-1]
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
