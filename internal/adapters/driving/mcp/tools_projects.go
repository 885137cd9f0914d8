package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateProjectInput is the input schema for create_project.
type CreateProjectInput struct {
	ProjectName       string        `json:"project_name" jsonschema:"the new project name"`
	ProjectType       string        `json:"project_type,omitempty" jsonschema:"Internal, External or Other"`
	Customer          string        `json:"customer,omitempty" jsonschema:"the customer the project is for"`
	ExpectedStartDate string        `json:"expected_start_date,omitempty" jsonschema:"planned start (YYYY-MM-DD)"`
	ExpectedEndDate   string        `json:"expected_end_date,omitempty" jsonschema:"planned end (YYYY-MM-DD)"`
	Extra             domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateTaskInput is the input schema for create_task.
type CreateTaskInput struct {
	Subject           string        `json:"subject" jsonschema:"the task subject"`
	Project           string        `json:"project,omitempty" jsonschema:"the project the task belongs to"`
	Priority          string        `json:"priority,omitempty" jsonschema:"Low, Medium, High or Urgent (default Medium)"`
	Status            string        `json:"status,omitempty" jsonschema:"task status (default Open)"`
	AssignedTo        string        `json:"assigned_to,omitempty" jsonschema:"user the task is assigned to"`
	ExpectedStartDate string        `json:"expected_start_date,omitempty" jsonschema:"planned start (YYYY-MM-DD)"`
	ExpectedEndDate   string        `json:"expected_end_date,omitempty" jsonschema:"planned end (YYYY-MM-DD)"`
	Extra             domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// LogTimeInput is the input schema for log_time.
type LogTimeInput struct {
	Employee     string        `json:"employee" jsonschema:"the employee logging time"`
	Hours        float64       `json:"hours" jsonschema:"hours worked"`
	ActivityType string        `json:"activity_type,omitempty" jsonschema:"the activity performed"`
	FromTime     string        `json:"from_time,omitempty" jsonschema:"work start timestamp"`
	ToTime       string        `json:"to_time,omitempty" jsonschema:"work end timestamp"`
	Project      string        `json:"project,omitempty" jsonschema:"the project worked on"`
	Task         string        `json:"task,omitempty" jsonschema:"the task worked on"`
	Extra        domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// ProjectNameInput identifies a project by name.
type ProjectNameInput struct {
	ProjectName string `json:"project_name" jsonschema:"the project name (ID)"`
}

// UpdateTaskStatusInput is the input schema for update_task_status.
type UpdateTaskStatusInput struct {
	TaskName string `json:"task_name" jsonschema:"the task name (ID)"`
	Status   string `json:"status" jsonschema:"the new status"`
}

func (s *Server) registerProjectsTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_project",
		Description: "Create a project",
	}, s.handleCreateProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_task",
		Description: "Create a task, optionally under a project",
	}, s.handleCreateTask)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "log_time",
		Description: "Log worked hours as a timesheet entry",
	}, s.handleLogTime)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project",
		Description: "Fetch a single project",
	}, s.handleGetProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_task",
		Description: "Fetch a single task",
	}, s.handleGetTask)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_projects_list",
		Description: "List projects",
	}, s.handleGetProjectsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_tasks_list",
		Description: "List tasks",
	}, s.handleGetTasksList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_task_status",
		Description: "Update a task's status",
	}, s.handleUpdateTaskStatus)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_project_tasks",
		Description: "List all tasks belonging to a project",
	}, s.handleGetProjectTasks)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_timesheets_list",
		Description: "List timesheets",
	}, s.handleGetTimesheetsList)
}

func (s *Server) handleCreateProject(ctx context.Context, _ *mcp.CallToolRequest, in CreateProjectInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.CreateProject(ctx, in.ProjectName, in.ProjectType, in.Customer, in.ExpectedStartDate, in.ExpectedEndDate, in.Extra)
	return s.finish("create_project", start, res)
}

func (s *Server) handleCreateTask(ctx context.Context, _ *mcp.CallToolRequest, in CreateTaskInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.CreateTask(ctx, in.Subject, in.Project, in.Priority, in.Status, in.AssignedTo, in.ExpectedStartDate, in.ExpectedEndDate, in.Extra)
	return s.finish("create_task", start, res)
}

func (s *Server) handleLogTime(ctx context.Context, _ *mcp.CallToolRequest, in LogTimeInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.LogTime(ctx, in.Employee, in.Hours, in.ActivityType, in.FromTime, in.ToTime, in.Project, in.Task, in.Extra)
	return s.finish("log_time", start, res)
}

func (s *Server) handleGetProject(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.GetProject(ctx, in.Name)
	return s.finish("get_project", start, res)
}

func (s *Server) handleGetTask(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.GetTask(ctx, in.Name)
	return s.finish("get_task", start, res)
}

func (s *Server) handleGetProjectsList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.GetProjectsList(ctx, in.Limit)
	return s.finish("get_projects_list", start, res)
}

func (s *Server) handleGetTasksList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.GetTasksList(ctx, in.Limit)
	return s.finish("get_tasks_list", start, res)
}

func (s *Server) handleUpdateTaskStatus(ctx context.Context, _ *mcp.CallToolRequest, in UpdateTaskStatusInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.UpdateTaskStatus(ctx, in.TaskName, in.Status)
	return s.finish("update_task_status", start, res)
}

func (s *Server) handleGetProjectTasks(ctx context.Context, _ *mcp.CallToolRequest, in ProjectNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.GetProjectTasks(ctx, in.ProjectName)
	return s.finish("get_project_tasks", start, res)
}

func (s *Server) handleGetTimesheetsList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.Projects.GetTimesheetsList(ctx, in.Limit)
	return s.finish("get_timesheets_list", start, res)
}
