package driving

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

// HRService covers employees, attendance, leave and payroll records.
type HRService interface {
	CreateEmployee(ctx context.Context, employeeName, dateOfJoining, department, designation string, extra domain.Record) *domain.OperationResult

	// MarkAttendance records attendance. status is "Present", "Absent"
	// or "Half Day".
	MarkAttendance(ctx context.Context, employee, attendanceDate, status string, extra domain.Record) *domain.OperationResult

	CreateLeaveApplication(ctx context.Context, employee, leaveType, fromDate, toDate string, extra domain.Record) *domain.OperationResult

	ApproveLeaveApplication(ctx context.Context, leaveApplicationName string) *domain.OperationResult

	GetEmployee(ctx context.Context, employeeID string) *domain.OperationResult

	GetEmployeesList(ctx context.Context, limit int) *domain.OperationResult

	SearchEmployees(ctx context.Context, query string, limit int) *domain.OperationResult

	GetAttendanceList(ctx context.Context, limit int) *domain.OperationResult

	GetLeaveApplicationsList(ctx context.Context, employee, status string, limit int) *domain.OperationResult

	// GetEmployeeAttendanceSummary aggregates attendance over a date
	// range. The hosted API has no summary endpoint, so this returns a
	// zeroed placeholder payload.
	GetEmployeeAttendanceSummary(ctx context.Context, employee, fromDate, toDate string) *domain.OperationResult

	CreateSalaryStructure(ctx context.Context, name, company, employee string, extra domain.Record) *domain.OperationResult

	CreateSalarySlip(ctx context.Context, employee, startDate, endDate string, extra domain.Record) *domain.OperationResult

	CreateJobApplicant(ctx context.Context, applicantName, jobTitle string, extra domain.Record) *domain.OperationResult
}
