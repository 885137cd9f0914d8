package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure ProjectsService implements the interface.
var _ driving.ProjectsService = (*ProjectsService)(nil)

// ProjectsService handles projects, tasks and timesheets.
type ProjectsService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewProjectsService creates a new projects service.
func NewProjectsService(client driven.ERPClient, log *zap.Logger) *ProjectsService {
	return &ProjectsService{client: client, log: log}
}

func (s *ProjectsService) CreateProject(ctx context.Context, projectName, projectType, customer, expectedStartDate, expectedEndDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating project", zap.String("project", projectName))

	rec := domain.Record{"project_name": projectName}
	setIfNotEmpty(rec, "project_type", projectType)
	setIfNotEmpty(rec, "customer", customer)
	setIfNotEmpty(rec, "expected_start_date", expectedStartDate)
	setIfNotEmpty(rec, "expected_end_date", expectedEndDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeProject)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeProject, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Project created successfully")
}

func (s *ProjectsService) CreateTask(ctx context.Context, subject, project, priority, status, assignedTo, expectedStartDate, expectedEndDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating task", zap.String("subject", subject))

	rec := domain.Record{
		"subject":  subject,
		"priority": orDefault(priority, "Medium"),
		"status":   orDefault(status, "Open"),
	}
	setIfNotEmpty(rec, "project", project)
	setIfNotEmpty(rec, "assigned_to", assignedTo)
	setIfNotEmpty(rec, "exp_start_date", expectedStartDate)
	setIfNotEmpty(rec, "exp_end_date", expectedEndDate)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeTask)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeTask, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Task created successfully")
}

func (s *ProjectsService) LogTime(ctx context.Context, employee string, hours float64, activityType, fromTime, toTime, project, task string, extra domain.Record) *domain.OperationResult {
	s.log.Info("logging time",
		zap.String("employee", employee),
		zap.Float64("hours", hours))

	timeLog := domain.Record{
		"activity_type": activityType,
		"hours":         hours,
		"from_time":     fromTime,
		"to_time":       toTime,
	}
	setIfNotEmpty(timeLog, "project", project)
	setIfNotEmpty(timeLog, "task", task)

	rec := domain.Record{
		"employee":  employee,
		"time_logs": []domain.Record{timeLog},
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeTimesheet)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeTimesheet, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Time logged successfully")
}

func (s *ProjectsService) GetProject(ctx context.Context, projectName string) *domain.OperationResult {
	s.log.Info("getting project", zap.String("project", projectName))

	result, err := s.client.GetDocument(ctx, domain.DocTypeProject, projectName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Project retrieved successfully")
}

func (s *ProjectsService) GetTask(ctx context.Context, taskName string) *domain.OperationResult {
	s.log.Info("getting task", zap.String("task", taskName))

	result, err := s.client.GetDocument(ctx, domain.DocTypeTask, taskName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Task retrieved successfully")
}

func (s *ProjectsService) GetProjectsList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting projects list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeProject, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Projects retrieved successfully")
}

func (s *ProjectsService) GetTasksList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting tasks list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeTask, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Tasks retrieved successfully")
}

func (s *ProjectsService) UpdateTaskStatus(ctx context.Context, taskName, status string) *domain.OperationResult {
	s.log.Info("updating task status",
		zap.String("task", taskName),
		zap.String("status", status))

	result, err := s.client.UpdateDocument(ctx, domain.DocTypeTask, taskName, domain.Record{"status": status})
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Task status updated to %s", status))
}

func (s *ProjectsService) GetProjectTasks(ctx context.Context, projectName string) *domain.OperationResult {
	s.log.Info("getting project tasks", zap.String("project", projectName))

	filters := []domain.Filter{domain.Eq("project", projectName)}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeTask, filters, nil, 0)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Tasks retrieved for project %s", projectName))
}

func (s *ProjectsService) GetTimesheetsList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting timesheets list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeTimesheet, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Timesheets retrieved successfully")
}
