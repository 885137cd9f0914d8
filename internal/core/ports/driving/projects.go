package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// ProjectsService covers projects, tasks and timesheets.
type ProjectsService interface {
	CreateProject(ctx context.Context, projectName, projectType, customer, expectedStartDate, expectedEndDate string, extra domain.Record) *domain.OperationResult

	// CreateTask creates a task. priority defaults to "Medium" and
	// status to "Open" when empty.
	CreateTask(ctx context.Context, subject, project, priority, status, assignedTo, expectedStartDate, expectedEndDate string, extra domain.Record) *domain.OperationResult

	// LogTime creates a timesheet with a single time log row.
	LogTime(ctx context.Context, employee string, hours float64, activityType, fromTime, toTime, project, task string, extra domain.Record) *domain.OperationResult

	GetProject(ctx context.Context, projectName string) *domain.OperationResult

	GetTask(ctx context.Context, taskName string) *domain.OperationResult

	GetProjectsList(ctx context.Context, limit int) *domain.OperationResult

	GetTasksList(ctx context.Context, limit int) *domain.OperationResult

	UpdateTaskStatus(ctx context.Context, taskName, status string) *domain.OperationResult

	GetProjectTasks(ctx context.Context, projectName string) *domain.OperationResult

	GetTimesheetsList(ctx context.Context, limit int) *domain.OperationResult
}
