package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CRMService covers leads, opportunities, campaigns and lead
// conversion.
type CRMService interface {
	// CreateLead creates a lead. status defaults to "Lead" when empty.
	CreateLead(ctx context.Context, leadName, status string, extra domain.Record) *domain.OperationResult

	// CreateOpportunity creates an opportunity. opportunityFrom is
	// "Lead" or "Customer"; opportunityType defaults to "Sales".
	CreateOpportunity(ctx context.Context, opportunityFrom, partyName, opportunityType string, extra domain.Record) *domain.OperationResult

	CreateCampaign(ctx context.Context, campaignName string, extra domain.Record) *domain.OperationResult

	// ConvertLeadToCustomer creates a customer from the lead's contact
	// details and marks the lead Converted.
	ConvertLeadToCustomer(ctx context.Context, leadName string) *domain.OperationResult

	// ConvertLeadToOpportunity opens a sales opportunity from the lead
	// and marks the lead status Opportunity.
	ConvertLeadToOpportunity(ctx context.Context, leadName string) *domain.OperationResult

	UpdateOpportunityStatus(ctx context.Context, opportunityName, status string) *domain.OperationResult

	SearchLeads(ctx context.Context, query string, limit int) *domain.OperationResult

	GetLeadsList(ctx context.Context, status string, limit int) *domain.OperationResult

	GetOpportunitiesList(ctx context.Context, status string, limit int) *domain.OperationResult
}
