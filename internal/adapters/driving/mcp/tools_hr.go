package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// CreateEmployeeInput is the input schema for create_employee.
type CreateEmployeeInput struct {
	EmployeeName  string        `json:"employee_name" jsonschema:"the employee's full name"`
	DateOfJoining string        `json:"date_of_joining" jsonschema:"joining date (YYYY-MM-DD)"`
	Department    string        `json:"department,omitempty" jsonschema:"department assignment"`
	Designation   string        `json:"designation,omitempty" jsonschema:"job title"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// MarkAttendanceInput is the input schema for mark_attendance.
type MarkAttendanceInput struct {
	Employee       string        `json:"employee" jsonschema:"the employee ID"`
	AttendanceDate string        `json:"attendance_date" jsonschema:"the date being marked (YYYY-MM-DD)"`
	Status         string        `json:"status" jsonschema:"Present, Absent or Half Day"`
	Extra          domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateLeaveApplicationInput is the input schema for create_leave_application.
type CreateLeaveApplicationInput struct {
	Employee  string        `json:"employee" jsonschema:"the employee ID"`
	LeaveType string        `json:"leave_type" jsonschema:"the leave type, e.g. Casual Leave"`
	FromDate  string        `json:"from_date" jsonschema:"first day of leave (YYYY-MM-DD)"`
	ToDate    string        `json:"to_date" jsonschema:"last day of leave (YYYY-MM-DD)"`
	Extra     domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// GetLeaveApplicationsListInput is the input schema for get_leave_applications_list.
type GetLeaveApplicationsListInput struct {
	Employee string `json:"employee,omitempty" jsonschema:"filter by employee"`
	Status   string `json:"status,omitempty" jsonschema:"filter by status"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 20)"`
}

// AttendanceSummaryInput is the input schema for get_employee_attendance_summary.
type AttendanceSummaryInput struct {
	Employee string `json:"employee" jsonschema:"the employee ID"`
	FromDate string `json:"from_date" jsonschema:"summary period start (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"summary period end (YYYY-MM-DD)"`
}

// CreateSalaryStructureInput is the input schema for create_salary_structure.
type CreateSalaryStructureInput struct {
	Name     string        `json:"name" jsonschema:"the salary structure name"`
	Company  string        `json:"company" jsonschema:"the employing company"`
	Employee string        `json:"employee" jsonschema:"the employee the structure applies to"`
	Extra    domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateSalarySlipInput is the input schema for create_salary_slip.
type CreateSalarySlipInput struct {
	Employee  string        `json:"employee" jsonschema:"the employee ID"`
	StartDate string        `json:"start_date" jsonschema:"payroll period start (YYYY-MM-DD)"`
	EndDate   string        `json:"end_date" jsonschema:"payroll period end (YYYY-MM-DD)"`
	Extra     domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

// CreateJobApplicantInput is the input schema for create_job_applicant.
type CreateJobApplicantInput struct {
	ApplicantName string        `json:"applicant_name" jsonschema:"the applicant's full name"`
	JobTitle      string        `json:"job_title" jsonschema:"the role applied for"`
	Extra         domain.Record `json:"extra,omitempty" jsonschema:"additional fields passed through to the document"`
}

func (s *Server) registerHRTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_employee",
		Description: "Create an employee record",
	}, s.handleCreateEmployee)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "mark_attendance",
		Description: "Record an employee's attendance for a date",
	}, s.handleMarkAttendance)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_leave_application",
		Description: "File a leave application for an employee",
	}, s.handleCreateLeaveApplication)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "approve_leave_application",
		Description: "Submit a leave application, approving the leave",
	}, s.handleApproveLeaveApplication)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_employee",
		Description: "Fetch a single employee",
	}, s.handleGetEmployee)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_employees_list",
		Description: "List employees",
	}, s.handleGetEmployeesList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_employees",
		Description: "Search employees by name",
	}, s.handleSearchEmployees)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_attendance_list",
		Description: "List attendance records",
	}, s.handleGetAttendanceList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_leave_applications_list",
		Description: "List leave applications, optionally filtered by employee and status",
	}, s.handleGetLeaveApplicationsList)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_employee_attendance_summary",
		Description: "Summarise an employee's attendance over a date range",
	}, s.handleGetEmployeeAttendanceSummary)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_salary_structure",
		Description: "Create a salary structure",
	}, s.handleCreateSalaryStructure)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_salary_slip",
		Description: "Create a salary slip for a payroll period",
	}, s.handleCreateSalarySlip)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_job_applicant",
		Description: "Register a job applicant",
	}, s.handleCreateJobApplicant)
}

func (s *Server) handleCreateEmployee(ctx context.Context, _ *mcp.CallToolRequest, in CreateEmployeeInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.CreateEmployee(ctx, in.EmployeeName, in.DateOfJoining, in.Department, in.Designation, in.Extra)
	return s.finish("create_employee", start, res)
}

func (s *Server) handleMarkAttendance(ctx context.Context, _ *mcp.CallToolRequest, in MarkAttendanceInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.MarkAttendance(ctx, in.Employee, in.AttendanceDate, in.Status, in.Extra)
	return s.finish("mark_attendance", start, res)
}

func (s *Server) handleCreateLeaveApplication(ctx context.Context, _ *mcp.CallToolRequest, in CreateLeaveApplicationInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.CreateLeaveApplication(ctx, in.Employee, in.LeaveType, in.FromDate, in.ToDate, in.Extra)
	return s.finish("create_leave_application", start, res)
}

func (s *Server) handleApproveLeaveApplication(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.ApproveLeaveApplication(ctx, in.Name)
	return s.finish("approve_leave_application", start, res)
}

func (s *Server) handleGetEmployee(ctx context.Context, _ *mcp.CallToolRequest, in DocumentNameInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.GetEmployee(ctx, in.Name)
	return s.finish("get_employee", start, res)
}

func (s *Server) handleGetEmployeesList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.GetEmployeesList(ctx, in.Limit)
	return s.finish("get_employees_list", start, res)
}

func (s *Server) handleSearchEmployees(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.SearchEmployees(ctx, in.Query, in.Limit)
	return s.finish("search_employees", start, res)
}

func (s *Server) handleGetAttendanceList(ctx context.Context, _ *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.GetAttendanceList(ctx, in.Limit)
	return s.finish("get_attendance_list", start, res)
}

func (s *Server) handleGetLeaveApplicationsList(ctx context.Context, _ *mcp.CallToolRequest, in GetLeaveApplicationsListInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.GetLeaveApplicationsList(ctx, in.Employee, in.Status, in.Limit)
	return s.finish("get_leave_applications_list", start, res)
}

func (s *Server) handleGetEmployeeAttendanceSummary(ctx context.Context, _ *mcp.CallToolRequest, in AttendanceSummaryInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.GetEmployeeAttendanceSummary(ctx, in.Employee, in.FromDate, in.ToDate)
	return s.finish("get_employee_attendance_summary", start, res)
}

func (s *Server) handleCreateSalaryStructure(ctx context.Context, _ *mcp.CallToolRequest, in CreateSalaryStructureInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.CreateSalaryStructure(ctx, in.Name, in.Company, in.Employee, in.Extra)
	return s.finish("create_salary_structure", start, res)
}

func (s *Server) handleCreateSalarySlip(ctx context.Context, _ *mcp.CallToolRequest, in CreateSalarySlipInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.CreateSalarySlip(ctx, in.Employee, in.StartDate, in.EndDate, in.Extra)
	return s.finish("create_salary_slip", start, res)
}

func (s *Server) handleCreateJobApplicant(ctx context.Context, _ *mcp.CallToolRequest, in CreateJobApplicantInput) (*mcp.CallToolResult, domain.OperationResult, error) {
	start := time.Now()
	res := s.ports.HR.CreateJobApplicant(ctx, in.ApplicantName, in.JobTitle, in.Extra)
	return s.finish("create_job_applicant", start, res)
}
