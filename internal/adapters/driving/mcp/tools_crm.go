package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateLeadInput is the input schema for create_lead.
type CreateLeadInput struct {
	LeadName string        `json:"lead_name" jsonschema:"the lead's full name"`
	Status   string        `json:"status,omitempty" jsonschema:"lead status (default Lead)"`
	Extra    domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateOpportunityInput is the input schema for create_opportunity.
type CreateOpportunityInput struct {
	OpportunityFrom string        `json:"opportunity_from" jsonschema:"Lead or Customer"`
	PartyName       string        `json:"party_name" jsonschema:"the lead or customer the opportunity is with"`
	OpportunityType string        `json:"opportunity_type,omitempty" jsonschema:"opportunity type (default Sales)"`
	Extra           domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateCampaignInput is the input schema for create_campaign.
type CreateCampaignInput struct {
	CampaignName string        `json:"campaign_name" jsonschema:"the new campaign name"`
	Extra        domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// LeadNameInput identifies a lead by name.
type LeadNameInput struct {
	LeadName string `json:"lead_name" jsonschema:"the lead name (ID)"`
}

// UpdateOpportunityStatusInput is the input schema for update_opportunity_status.
type UpdateOpportunityStatusInput struct {
	OpportunityName string `json:"opportunity_name" jsonschema:"the opportunity name (ID)"`
	Status          string `json:"status" jsonschema:"the new status"`
}

// StatusListInput is the shared input schema for status-filtered list
// tools.
type StatusListInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

func (s *Server) registerCRMTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_lead",
		Description: "Create a sales lead",
	}, s.handleCreateLead)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_opportunity",
		Description: "Create a sales opportunity",
	}, s.handleCreateOpportunity)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_campaign",
		Description: "Create a marketing campaign",
	}, s.handleCreateCampaign)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_lead_to_customer",
		Description: "Create a customer from a lead and mark the lead converted",
	}, s.handleConvertLeadToCustomer)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_lead_to_opportunity",
		Description: "Open an opportunity from a lead",
	}, s.handleConvertLeadToOpportunity)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_opportunity_status",
		Description: "Update an opportunity's status",
	}, s.handleUpdateOpportunityStatus)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_leads",
		Description: "Search leads by name",
	}, s.handleSearchLeads)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_leads_list",
		Description: "List leads, optionally filtered by status",
	}, s.handleGetLeadsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_opportunities_list",
		Description: "List opportunities, optionally filtered by status",
	}, s.handleGetOpportunitiesList)
}

func (s *Server) handleCreateLead(ctx context.Context, _ *mcp.CallToolRequest, in CreateLeadInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.CreateLead(ctx, in.LeadName, in.Status, in.Extra)
	return s.finish("create_lead", start, res)
}

func (s *Server) handleCreateOpportunity(ctx context.Context, _ *mcp.CallToolRequest, in CreateOpportunityInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.CreateOpportunity(ctx, in.OpportunityFrom, in.PartyName, in.OpportunityType, in.Extra)
	return s.finish("create_opportunity", start, res)
}

func (s *Server) handleCreateCampaign(ctx context.Context, _ *mcp.CallToolRequest, in CreateCampaignInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.CreateCampaign(ctx, in.CampaignName, in.Extra)
	return s.finish("create_campaign", start, res)
}

func (s *Server) handleConvertLeadToCustomer(ctx context.Context, _ *mcp.CallToolRequest, in LeadNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.ConvertLeadToCustomer(ctx, in.LeadName)
	return s.finish("convert_lead_to_customer", start, res)
}

func (s *Server) handleConvertLeadToOpportunity(ctx context.Context, _ *mcp.CallToolRequest, in LeadNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.ConvertLeadToOpportunity(ctx, in.LeadName)
	return s.finish("convert_lead_to_opportunity", start, res)
}

func (s *Server) handleUpdateOpportunityStatus(ctx context.Context, _ *mcp.CallToolRequest, in UpdateOpportunityStatusInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.UpdateOpportunityStatus(ctx, in.OpportunityName, in.Status)
	return s.finish("update_opportunity_status", start, res)
}

func (s *Server) handleSearchLeads(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.SearchLeads(ctx, in.Query, in.Limit)
	return s.finish("search_leads", start, res)
}

func (s *Server) handleGetLeadsList(ctx context.Context, _ *mcp.CallToolRequest, in StatusListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.GetLeadsList(ctx, in.Status, in.Limit)
	return s.finish("get_leads_list", start, res)
}

func (s *Server) handleGetOpportunitiesList(ctx context.Context, _ *mcp.CallToolRequest, in StatusListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.CRM.GetOpportunitiesList(ctx, in.Status, in.Limit)
	return s.finish("get_opportunities_list", start, res)
}
