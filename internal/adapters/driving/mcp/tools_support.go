package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateIssueInput is the input schema for create_issue.
type CreateIssueInput struct {
	Subject   string        `json:"subject" jsonschema:"the issue subject"`
	Customer  string        `json:"customer,omitempty" jsonschema:"the customer reporting the issue"`
	IssueType string        `json:"issue_type,omitempty" jsonschema:"issue type (default Bug)"`
	Priority  string        `json:"priority,omitempty" jsonschema:"Low, Medium or High (default Medium)"`
	Extra     domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateSLAInput is the input schema for create_service_level_agreement.
type CreateSLAInput struct {
	ServiceLevel string        `json:"service_level" jsonschema:"the service level name"`
	Customer     string        `json:"customer,omitempty" jsonschema:"the customer the SLA applies to"`
	StartDate    string        `json:"start_date,omitempty" jsonschema:"SLA start date (YYYY-MM-DD)"`
	EndDate      string        `json:"end_date,omitempty" jsonschema:"SLA end date (YYYY-MM-DD)"`
	Extra        domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateWarrantyClaimInput is the input schema for create_warranty_claim.
type CreateWarrantyClaimInput struct {
	Customer string        `json:"customer" jsonschema:"the claiming customer"`
	ItemCode string        `json:"item_code" jsonschema:"the item under warranty"`
	SerialNo string        `json:"serial_no,omitempty" jsonschema:"the serial number claimed against"`
	Extra    domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// UpdateIssueStatusInput is the input schema for update_issue_status.
type UpdateIssueStatusInput struct {
	IssueName string `json:"issue_name" jsonschema:"the issue name (ID)"`
	Status    string `json:"status" jsonschema:"the new status"`
}

// AssignIssueInput is the input schema for assign_issue.
type AssignIssueInput struct {
	IssueName  string `json:"issue_name" jsonschema:"the issue name (ID)"`
	AssignedTo string `json:"assigned_to" jsonschema:"user the issue is assigned to"`
}

// CloseIssueInput is the input schema for close_issue.
type CloseIssueInput struct {
	IssueName  string `json:"issue_name" jsonschema:"the issue name (ID)"`
	Resolution string `json:"resolution,omitempty" jsonschema:"resolution details recorded on close"`
}

// GetIssuesListInput is the input schema for get_issues_list.
type GetIssuesListInput struct {
	Customer string `json:"customer,omitempty" jsonschema:"filter by customer"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status"`
	Priority string `json:"priority,omitempty" jsonschema:"filter by priority"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// GetWarrantyClaimsListInput is the input schema for get_warranty_claims_list.
type GetWarrantyClaimsListInput struct {
	Customer string `json:"customer,omitempty" jsonschema:"filter by customer"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

func (s *Server) registerSupportTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_issue",
		Description: "Open a support issue",
	}, s.handleCreateIssue)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_service_level_agreement",
		Description: "Create a service level agreement",
	}, s.handleCreateSLA)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_warranty_claim",
		Description: "Record a warranty claim",
	}, s.handleCreateWarrantyClaim)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_issue_status",
		Description: "Update an issue's status",
	}, s.handleUpdateIssueStatus)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "assign_issue",
		Description: "Assign an issue to a user",
	}, s.handleAssignIssue)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "close_issue",
		Description: "Close an issue, optionally recording the resolution",
	}, s.handleCloseIssue)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_issues_list",
		Description: "List issues, optionally filtered by customer, status and priority",
	}, s.handleGetIssuesList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_warranty_claims_list",
		Description: "List warranty claims",
	}, s.handleGetWarrantyClaimsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_issues",
		Description: "Search issues by subject",
	}, s.handleSearchIssues)
}

func (s *Server) handleCreateIssue(ctx context.Context, _ *mcp.CallToolRequest, in CreateIssueInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.CreateIssue(ctx, in.Subject, in.Customer, in.IssueType, in.Priority, in.Extra)
	return s.finish("create_issue", start, res)
}

func (s *Server) handleCreateSLA(ctx context.Context, _ *mcp.CallToolRequest, in CreateSLAInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.CreateServiceLevelAgreement(ctx, in.ServiceLevel, in.Customer, in.StartDate, in.EndDate, in.Extra)
	return s.finish("create_service_level_agreement", start, res)
}

func (s *Server) handleCreateWarrantyClaim(ctx context.Context, _ *mcp.CallToolRequest, in CreateWarrantyClaimInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.CreateWarrantyClaim(ctx, in.Customer, in.ItemCode, in.SerialNo, in.Extra)
	return s.finish("create_warranty_claim", start, res)
}

func (s *Server) handleUpdateIssueStatus(ctx context.Context, _ *mcp.CallToolRequest, in UpdateIssueStatusInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.UpdateIssueStatus(ctx, in.IssueName, in.Status)
	return s.finish("update_issue_status", start, res)
}

func (s *Server) handleAssignIssue(ctx context.Context, _ *mcp.CallToolRequest, in AssignIssueInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.AssignIssue(ctx, in.IssueName, in.AssignedTo)
	return s.finish("assign_issue", start, res)
}

func (s *Server) handleCloseIssue(ctx context.Context, _ *mcp.CallToolRequest, in CloseIssueInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.CloseIssue(ctx, in.IssueName, in.Resolution)
	return s.finish("close_issue", start, res)
}

func (s *Server) handleGetIssuesList(ctx context.Context, _ *mcp.CallToolRequest, in GetIssuesListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.GetIssuesList(ctx, in.Customer, in.Status, in.Priority, in.Limit)
	return s.finish("get_issues_list", start, res)
}

func (s *Server) handleGetWarrantyClaimsList(ctx context.Context, _ *mcp.CallToolRequest, in GetWarrantyClaimsListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.GetWarrantyClaimsList(ctx, in.Customer, in.Status, in.Limit)
	return s.finish("get_warranty_claims_list", start, res)
}

func (s *Server) handleSearchIssues(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Support.SearchIssues(ctx, in.Query, in.Limit)
	return s.finish("search_issues", start, res)
}
