package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

func TestCRMService_CreateLead_DefaultStatus(t *testing.T) {
	client := &mockERPClient{}
	svc := NewCRMService(client, testLogger())

	result := svc.CreateLead(context.Background(), "Jordan Smith", "", nil)

	require.True(t, result.Success)
	assert.Equal(t, "Lead created successfully", result.Message)

	call := client.lastCall()
	assert.Equal(t, domain.DocTypeLead, call.doctype)
	assert.Equal(t, "Jordan Smith", call.doc["lead_name"])
	assert.Equal(t, "Lead", call.doc["status"])
}

func TestCRMService_ConvertLeadToCustomer_CompanyLead(t *testing.T) {
	client := &mockERPClient{
		getResult: domain.Record{
			"name":         "CRM-LEAD-0001",
			"lead_name":    "Jordan Smith",
			"company_name": "ACME Corp",
			"email_id":     "jordan@acme.test",
			"mobile_no":    "555-0100",
		},
		createResult: domain.Record{"name": "ACME Corp"},
	}
	svc := NewCRMService(client, testLogger())

	result := svc.ConvertLeadToCustomer(context.Background(), "CRM-LEAD-0001")

	require.True(t, result.Success)
	assert.Equal(t, "Lead converted to customer successfully", result.Message)
	assert.Equal(t, domain.Record{"name": "ACME Corp"}, result.Data)

	require.Len(t, client.calls, 3)

	get := client.calls[0]
	assert.Equal(t, "get", get.op)
	assert.Equal(t, domain.DocTypeLead, get.doctype)
	assert.Equal(t, "CRM-LEAD-0001", get.name)

	create := client.calls[1]
	assert.Equal(t, "create", create.op)
	assert.Equal(t, domain.DocTypeCustomer, create.doctype)
	assert.Equal(t, "Jordan Smith", create.doc["customer_name"])
	assert.Equal(t, "Company", create.doc["customer_type"])
	assert.Equal(t, "jordan@acme.test", create.doc["email_id"])
	assert.Equal(t, "555-0100", create.doc["mobile_no"])

	update := client.calls[2]
	assert.Equal(t, "update", update.op)
	assert.Equal(t, domain.DocTypeLead, update.doctype)
	assert.Equal(t, domain.Record{"status": "Converted"}, update.doc)
}

func TestCRMService_ConvertLeadToCustomer_IndividualLead(t *testing.T) {
	client := &mockERPClient{
		getResult: domain.Record{"name": "CRM-LEAD-0002", "lead_name": "Sam Lee"},
	}
	svc := NewCRMService(client, testLogger())

	result := svc.ConvertLeadToCustomer(context.Background(), "CRM-LEAD-0002")

	require.True(t, result.Success)
	create := client.calls[1]
	assert.Equal(t, "Individual", create.doc["customer_type"])
	assert.NotContains(t, create.doc, "email_id")
	assert.NotContains(t, create.doc, "mobile_no")
}

func TestCRMService_ConvertLeadToCustomer_LeadMissing(t *testing.T) {
	client := &mockERPClient{getErr: errors.New("Lead CRM-LEAD-0404 does not exist")}
	svc := NewCRMService(client, testLogger())

	result := svc.ConvertLeadToCustomer(context.Background(), "CRM-LEAD-0404")

	require.False(t, result.Success)
	assert.Equal(t, domain.CodeNotFound, result.ErrorCode)
	assert.Len(t, client.calls, 1, "conversion must stop after the failed fetch")
}

func TestCRMService_ConvertLeadToOpportunity_Flow(t *testing.T) {
	client := &mockERPClient{createResult: domain.Record{"name": "OPTY-0001"}}
	svc := NewCRMService(client, testLogger())

	result := svc.ConvertLeadToOpportunity(context.Background(), "CRM-LEAD-0001")

	require.True(t, result.Success)
	assert.Equal(t, "Lead converted to opportunity successfully", result.Message)

	require.Len(t, client.calls, 2)

	create := client.calls[0]
	assert.Equal(t, domain.DocTypeOpportunity, create.doctype)
	assert.Equal(t, "Lead", create.doc["opportunity_from"])
	assert.Equal(t, "CRM-LEAD-0001", create.doc["party_name"])
	assert.Equal(t, "Sales", create.doc["opportunity_type"])

	update := client.calls[1]
	assert.Equal(t, domain.DocTypeLead, update.doctype)
	assert.Equal(t, domain.Record{"status": "Opportunity"}, update.doc)
}

func TestCRMService_SearchLeads_LikeFilter(t *testing.T) {
	client := &mockERPClient{listResult: []domain.Record{{"name": "CRM-LEAD-0001"}}}
	svc := NewCRMService(client, testLogger())

	result := svc.SearchLeads(context.Background(), "jordan", 0)

	require.True(t, result.Success)
	assert.Equal(t, "Found 1 leads", result.Message)

	call := client.lastCall()
	require.Len(t, call.filters, 1)
	assert.Equal(t, domain.Like("lead_name", "%jordan%"), call.filters[0])
	assert.Equal(t, []string{"name", "lead_name", "status", "email_id", "mobile_no"}, call.fields)
	assert.Equal(t, defaultSearchLimit, call.limit)
}

func TestCRMService_GetLeadsList_StatusFilter(t *testing.T) {
	client := &mockERPClient{listResult: []domain.Record{{"name": "CRM-LEAD-0001"}, {"name": "CRM-LEAD-0002"}}}
	svc := NewCRMService(client, testLogger())

	result := svc.GetLeadsList(context.Background(), "Open", 0)

	require.True(t, result.Success)
	assert.Equal(t, "Retrieved 2 leads", result.Message)

	call := client.lastCall()
	assert.Equal(t, []domain.Filter{domain.Eq("status", "Open")}, call.filters)
}
