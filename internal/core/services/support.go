package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure SupportService implements the interface.
var _ driving.SupportService = (*SupportService)(nil)

// SupportService handles issues, SLAs and warranty claims.
type SupportService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewSupportService creates a new support service.
func NewSupportService(client driven.ERPClient, log *zap.Logger) *SupportService {
	return &SupportService{client: client, log: log}
}

func (s *SupportService) CreateIssue(ctx context.Context, subject, customer, issueType, priority string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating issue", zap.String("subject", subject))

	rec := domain.Record{
		"subject":    subject,
		"customer":   customer,
		"issue_type": orDefault(issueType, "Bug"),
		"priority":   orDefault(priority, "Medium"),
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeIssue)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeIssue, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Issue created successfully")
}

func (s *SupportService) CreateServiceLevelAgreement(ctx context.Context, serviceLevel, customer, startDate, endDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating SLA", zap.String("customer", customer))

	rec := domain.Record{
		"service_level": serviceLevel,
		"customer":      customer,
		"start_date":    startDate,
		"end_date":      endDate,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeServiceLevelAgreement)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeServiceLevelAgreement, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Service Level Agreement created successfully")
}

func (s *SupportService) CreateWarrantyClaim(ctx context.Context, customer, itemCode, serialNo string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating warranty claim", zap.String("customer", customer))

	rec := domain.Record{
		"customer":  customer,
		"item_code": itemCode,
	}
	setIfNotEmpty(rec, "serial_no", serialNo)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeWarrantyClaim)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeWarrantyClaim, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Warranty Claim created successfully")
}

func (s *SupportService) UpdateIssueStatus(ctx context.Context, issueName, status string) *domain.OperationResult {
	s.log.Info("updating issue status",
		zap.String("issue", issueName),
		zap.String("status", status))

	result, err := s.client.UpdateDocument(ctx, domain.DocTypeIssue, issueName, domain.Record{"status": status})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Issue status updated successfully")
}

func (s *SupportService) AssignIssue(ctx context.Context, issueName, assignedTo string) *domain.OperationResult {
	s.log.Info("assigning issue",
		zap.String("issue", issueName),
		zap.String("assigned_to", assignedTo))

	result, err := s.client.UpdateDocument(ctx, domain.DocTypeIssue, issueName, domain.Record{"_assign": assignedTo})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Issue assigned successfully")
}

func (s *SupportService) CloseIssue(ctx context.Context, issueName, resolution string) *domain.OperationResult {
	s.log.Info("closing issue", zap.String("issue", issueName))

	update := domain.Record{"status": "Closed"}
	setIfNotEmpty(update, "resolution", resolution)

	result, err := s.client.UpdateDocument(ctx, domain.DocTypeIssue, issueName, update)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Issue closed successfully")
}

func (s *SupportService) GetIssuesList(ctx context.Context, customer, status, priority string, limit int) *domain.OperationResult {
	s.log.Info("getting issues list", zap.Int("limit", limit))

	var filters []domain.Filter
	if customer != "" {
		filters = append(filters, domain.Eq("customer", customer))
	}
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}
	if priority != "" {
		filters = append(filters, domain.Eq("priority", priority))
	}

	fields := []string{"name", "subject", "customer", "status", "priority", "creation"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeIssue, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d issues", len(result)))
}

func (s *SupportService) GetWarrantyClaimsList(ctx context.Context, customer, status string, limit int) *domain.OperationResult {
	s.log.Info("getting warranty claims list", zap.Int("limit", limit))

	var filters []domain.Filter
	if customer != "" {
		filters = append(filters, domain.Eq("customer", customer))
	}
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "customer", "item_code", "status", "complaint_date"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeWarrantyClaim, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d warranty claims", len(result)))
}

func (s *SupportService) SearchIssues(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching issues", zap.String("query", query))

	filters := []domain.Filter{domain.Like("subject", "%"+query+"%")}
	fields := []string{"name", "subject", "customer", "status", "priority"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeIssue, filters, fields, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found %d issues", len(result)))
}
