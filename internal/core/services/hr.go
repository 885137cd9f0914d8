package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ensure HRService implements the interface.
var _ driving.HRService = (*HRService)(nil)

// HRService handles employees, attendance, leave and payroll.
type HRService struct {
	client driven.ERPClient
	log    *zap.Logger
}

// NewHRService creates a new HR service.
func NewHRService(client driven.ERPClient, log *zap.Logger) *HRService {
	return &HRService{client: client, log: log}
}

func (s *HRService) CreateEmployee(ctx context.Context, employeeName, dateOfJoining, department, designation string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating employee", zap.String("employee", employeeName))

	rec := domain.Record{
		"employee_name":   employeeName,
		"date_of_joining": dateOfJoining,
	}
	setIfNotEmpty(rec, "department", department)
	setIfNotEmpty(rec, "designation", designation)
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeEmployee)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeEmployee, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Employee created successfully")
}

func (s *HRService) MarkAttendance(ctx context.Context, employee, attendanceDate, status string, extra domain.Record) *domain.OperationResult {
	s.log.Info("marking attendance", zap.String("employee", employee))

	rec := domain.Record{
		"employee":        employee,
		"attendance_date": attendanceDate,
		"status":          status,
	}
	rec = rec.Merge(extra)
	mapped := domain.MapRecord(rec, domain.DocTypeAttendance)

	result, err := s.client.CreateDocument(ctx, domain.DocTypeAttendance, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Attendance marked successfully")
}

func (s *HRService) CreateLeaveApplication(ctx context.Context, employee, leaveType, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating leave application", zap.String("employee", employee))

	rec := domain.Record{
		"employee":   employee,
		"leave_type": leaveType,
		"from_date":  fromDate,
		"to_date":    toDate,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeLeaveApplication)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeLeaveApplication, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Leave Application created successfully")
}

func (s *HRService) ApproveLeaveApplication(ctx context.Context, leaveApplicationName string) *domain.OperationResult {
	s.log.Info("approving leave application", zap.String("leave_application", leaveApplicationName))

	result, err := s.client.SubmitDocument(ctx, domain.DocTypeLeaveApplication, leaveApplicationName)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Leave Application approved successfully")
}

func (s *HRService) GetEmployee(ctx context.Context, employeeID string) *domain.OperationResult {
	s.log.Info("getting employee", zap.String("employee", employeeID))

	result, err := s.client.GetDocument(ctx, domain.DocTypeEmployee, employeeID)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Employee retrieved successfully")
}

func (s *HRService) GetEmployeesList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting employees list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeEmployee, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Employees retrieved successfully")
}

func (s *HRService) SearchEmployees(ctx context.Context, query string, limit int) *domain.OperationResult {
	s.log.Info("searching employees", zap.String("query", query))

	filters := []domain.Filter{domain.Like("name", "%"+query+"%")}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeEmployee, filters, nil, searchLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Found employees matching '%s'", query))
}

func (s *HRService) GetAttendanceList(ctx context.Context, limit int) *domain.OperationResult {
	s.log.Info("getting attendance list")

	result, err := s.client.ListDocuments(ctx, domain.DocTypeAttendance, nil, nil, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Attendance records retrieved successfully")
}

func (s *HRService) GetLeaveApplicationsList(ctx context.Context, employee, status string, limit int) *domain.OperationResult {
	s.log.Info("getting leave applications list", zap.Int("limit", limit))

	var filters []domain.Filter
	if employee != "" {
		filters = append(filters, domain.Eq("employee", employee))
	}
	if status != "" {
		filters = append(filters, domain.Eq("status", status))
	}

	fields := []string{"name", "employee", "leave_type", "from_date", "to_date", "status"}
	result, err := s.client.ListDocuments(ctx, domain.DocTypeLeaveApplication, filters, fields, listLimit(limit))
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, fmt.Sprintf("Retrieved %d leave applications", len(result)))
}

// GetEmployeeAttendanceSummary has no remote endpoint on the standard
// REST surface, so it reports zeroed counters with an explanatory
// payload.
func (s *HRService) GetEmployeeAttendanceSummary(ctx context.Context, employee, fromDate, toDate string) *domain.OperationResult {
	s.log.Info("getting attendance summary", zap.String("employee", employee))

	result := domain.Record{
		"employee":     employee,
		"from_date":    fromDate,
		"to_date":      toDate,
		"present_days": 0,
		"absent_days":  0,
		"half_days":    0,
		"message":      "This would require a custom ERPNext API method to get real attendance summary",
	}
	return domain.Succeed(result, fmt.Sprintf("Attendance summary retrieved for %s", employee))
}

func (s *HRService) CreateSalaryStructure(ctx context.Context, name, company, employee string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating salary structure", zap.String("employee", employee))

	rec := domain.Record{"name": name, "company": company, "employee": employee}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeSalaryStructure)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSalaryStructure, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Salary Structure created successfully")
}

func (s *HRService) CreateSalarySlip(ctx context.Context, employee, startDate, endDate string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating salary slip", zap.String("employee", employee))

	rec := domain.Record{
		"employee":   employee,
		"start_date": startDate,
		"end_date":   endDate,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeSalarySlip)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeSalarySlip, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Salary Slip created successfully")
}

func (s *HRService) CreateJobApplicant(ctx context.Context, applicantName, jobTitle string, extra domain.Record) *domain.OperationResult {
	s.log.Info("creating job applicant", zap.String("applicant", applicantName))

	rec := domain.Record{
		"applicant_name": applicantName,
		"job_title":      jobTitle,
	}
	rec = rec.Merge(extra)

	mapped, err := mapAndValidate(rec, domain.DocTypeJobApplicant)
	if err != nil {
		return domain.Fail(err)
	}

	result, err := s.client.CreateDocument(ctx, domain.DocTypeJobApplicant, mapped)
	if err != nil {
		return domain.Fail(err)
	}
	return domain.Succeed(result, "Job Applicant created successfully")
}
