package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure CRMService implements the interface.
var _ driving.CRMService = (*CRMService)(nil)

// CRMService handles leads, opportunities and campaigns.
type CRMService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewCRMService creates a new CRM service.
func NewCRMService(client driven.ERPClient, log *zap.Logger) *CRMService {
	return &CRMService{client: client, log: log}
}

func (s *CRMService) CreateLead(ctx context.Context, leadName, status string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating lead", zap.String("lead", leadName))

	rec := domain.Record{
		"lead_name": leadName,
		"status":    orDefault(status, "Lead"),
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeLead)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeLead, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Lead created successfully")
}

func (s *CRMService) CreateOpportunity(ctx context.Context, opportunityFrom, partyName, opportunityType string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating opportunity",
		zap.String("from", opportunityFrom),
		zap.String("party", partyName))

	rec := domain.Record{
		"opportunity_from": opportunityFrom,
		"party_name":       partyName,
		"opportunity_type": orDefault(opportunityType, "Sales"),
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeOpportunity)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeOpportunity, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Opportunity created successfully")
}

func (s *CRMService) CreateCampaign(ctx context.Context, campaignName string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating campaign", zap.String("campaign", campaignName))

	rec := domain.Record{"campaign_name": campaignName}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeCampaign)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeCampaign, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Campaign created successfully")
}

// ConvertLeadToCustomer copies the lead's identity and contact details
// into a new customer, then marks the lead Converted. The returned
// payload is the created customer.
func (s *CRMService) ConvertLeadToCustomer(ctx context.Context, leadName string) *domain.OperationResult {
	s.log.Info("converting lead to customer", zap.String("lead", leadName))

	lead, err := s.client.GetDocument(ctx, domain.DocTypeLead, leadName)
	if err != nil {
		return domain.Fail(err)
	}

	customerType := "Individual"
	if company, ok := lead["company_name"].(string); ok && company != "" {
		customerType = "Company"
	}
	customer := domain.Record{
		"customer_name": lead["lead_name"],
		"customer_type": customerType,
	}
	if email, ok := lead["email_id"].(string); ok && email != "" {
		customer["email_id"] = email
	}
	if phone, ok := lead["mobile_no"].(string); ok && phone != "" {
		customer["mobile_no"] = phone
	}

	created, err := s.client.CreateDocument(ctx, domain.DocTypeCustomer, customer)
	if err != nil {
		return domain.Fail(err)
	}

	if _, err := s.client.UpdateDocument(ctx, domain.DocTypeLead, leadName, domain.Record{"status": "Converted"}); err != nil {
		return domain.Fail(err)
	}

	return domain.Succeed(created, "Lead converted to customer successfully")
}

// ConvertLeadToOpportunity opens a sales opportunity sourced from the
// lead and marks the lead status Opportunity.
func (s *CRMService) ConvertLeadToOpportunity(ctx context.Context, leadName string) *domain.OperationResult {
	s.log.Info("converting lead to opportunity", zap.String("lead", leadName))

	opportunity := domain.Record{
		"opportunity_from": "Lead",
		"party_name":       leadName,
		"opportunity_type": "Sales",
	}

	created, err := s.client.CreateDocument(ctx, domain.DocTypeOpportunity, opportunity)
	if err != nil {
		return domain.Fail(err)
	}

	if _, err := s.client.UpdateDocument(ctx, domain.DocTypeLead, leadName, domain.Record{"status": "Opportunity"}); err != nil {
		return domain.Fail(err)
	}

	return domain.Succeed(created, "Lead converted to opportunity successfully")
}

func (s *CRMService) UpdateOpportunityStatus(ctx context.Context, opportunityName, status string) *domain.OperationResult {
	s.log.Info("updating opportunity status",
		zap.String("opportunity", opportunityName),
		zap.String("status", status))

	result, err := s.client.UpdateDocument(ctx, domain.DocTypeOpportunity, opportunityName, domain.Record{"status": status})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Opportunity status updated successfully")
}

func (s *CRMService) SearchLeads(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching leads", zap.String("query", query))

	filters := []domain.Filter{domain.Like("lead_name", "%"+query+"%")}
	fields := []string{"name", "lead_name", "status", "email_id", "mobile_no"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeLead, filters, fields, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found %d leads", len(result)))
}

func (s *CRMService) GetLeadsList(ctx context.Context, status string, limit int) *domain.OperationResult {
	s.log.Info("getting leads list", zap.Int("limit", limit))

	var filters []domain.Filter
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "lead_name", "status", "email_id", "mobile_no", "creation"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeLead, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d leads", len(result)))
}

func (s *CRMService) GetOpportunitiesList(ctx context.Context, status string, limit int) *domain.OperationResult {
	s.log.Info("getting opportunities list", zap.Int("limit", limit))

	var filters []domain.Filter
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "party_name", "opportunity_from", "status", "opportunity_amount"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeOpportunity, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d opportunities", len(result)))
}
