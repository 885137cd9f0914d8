package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// SupportService covers issues, SLAs and warranty claims.
type SupportService interface {
	// CreateIssue opens a support issue. issueType defaults to "Bug"
	// and priority to "Medium" when empty.
	CreateIssue(ctx context.Context, subject, customer, issueType, priority string, extra domain.Record) *domain.OperationResult

	CreateServiceLevelAgreement(ctx context.Context, serviceLevel, customer, startDate, endDate string, extra domain.Record) *domain.OperationResult

	CreateWarrantyClaim(ctx context.Context, customer, itemCode, serialNo string, extra domain.Record) *domain.OperationResult

	UpdateIssueStatus(ctx context.Context, issueName, status string) *domain.OperationResult

	// AssignIssue sets the issue's assignment field to a user.
	AssignIssue(ctx context.Context, issueName, assignedTo string) *domain.OperationResult

	// CloseIssue sets status Closed, recording the resolution when
	// given.
	CloseIssue(ctx context.Context, issueName, resolution string) *domain.OperationResult

	GetIssuesList(ctx context.Context, customer, status, priority string, limit int) *domain.OperationResult

	GetWarrantyClaimsList(ctx context.Context, customer, status string, limit int) *domain.OperationResult

	SearchIssues(ctx context.Context, query string, limit int) *domain.OperationResult
}
