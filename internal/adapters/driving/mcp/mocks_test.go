package mcp

import (
	"context"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// --- Mock implementations ---

// svcCall records one service invocation: the method name and its
// arguments in declaration order, contexts excluded.
type svcCall struct {
	method string
	args   []any
}

// callRecorder is embedded by every mock service. Each method records
// its call and returns the canned result.
type callRecorder struct {
	result *domain.OperationResult
	calls  []svcCall
}

func (r *callRecorder) record(method string, args ...any) *domain.OperationResult {
	r.calls = append(r.calls, svcCall{method: method, args: args})
	if r.result != nil {
		return r.result
	}
	return domain.Succeed(domain.Record{"name": "MOCK-0001"}, "ok")
}

func (r *callRecorder) lastCall() svcCall {
	if len(r.calls) == 0 {
		return svcCall{}
	}
	return r.calls[len(r.calls)-1]
}

var _ driving.AccountingService = (*mockAccounting)(nil)

type mockAccounting struct{ callRecorder }

func (m *mockAccounting) CreateSalesInvoice(_ context.Context, customer string, items []domain.Record, postingDate, dueDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSalesInvoice", customer, items, postingDate, dueDate, extra)
}

func (m *mockAccounting) ApproveSalesInvoice(_ context.Context, invoiceName string) *domain.OperationResult {
	return m.record("ApproveSalesInvoice", invoiceName)
}

func (m *mockAccounting) CreatePurchaseInvoice(_ context.Context, supplier string, items []domain.Record, postingDate, dueDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePurchaseInvoice", supplier, items, postingDate, dueDate, extra)
}

func (m *mockAccounting) CreatePayment(_ context.Context, paymentType, partyType, party string, paidAmount float64, paidFromAccount, paidToAccount, postingDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePayment", paymentType, partyType, party, paidAmount, paidFromAccount, paidToAccount, postingDate, extra)
}

func (m *mockAccounting) GetInvoice(_ context.Context, invoiceType, invoiceName string) *domain.OperationResult {
	return m.record("GetInvoice", invoiceType, invoiceName)
}

func (m *mockAccounting) GetInvoicesList(_ context.Context, invoiceType string, limit int) *domain.OperationResult {
	return m.record("GetInvoicesList", invoiceType, limit)
}

func (m *mockAccounting) GetPaymentsList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetPaymentsList", limit)
}

func (m *mockAccounting) GetAccountBalance(_ context.Context, account string) *domain.OperationResult {
	return m.record("GetAccountBalance", account)
}

func (m *mockAccounting) CreateCostCenter(_ context.Context, costCenterName, parentCostCenter string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateCostCenter", costCenterName, parentCostCenter, extra)
}

func (m *mockAccounting) CreateBudget(_ context.Context, costCenter, fiscalYear string, accounts []domain.Record, extra domain.Record) *domain.OperationResult {
	return m.record("CreateBudget", costCenter, fiscalYear, accounts, extra)
}

func (m *mockAccounting) CreateFiscalYear(_ context.Context, year, yearStartDate, yearEndDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateFiscalYear", year, yearStartDate, yearEndDate, extra)
}

func (m *mockAccounting) GetFinancialStatements(_ context.Context, company, reportType, fromDate, toDate string) *domain.OperationResult {
	return m.record("GetFinancialStatements", company, reportType, fromDate, toDate)
}

func (m *mockAccounting) GetBalanceSheet(_ context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return m.record("GetBalanceSheet", company, fromDate, toDate, extra)
}

func (m *mockAccounting) GetProfitAndLoss(_ context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return m.record("GetProfitAndLoss", company, fromDate, toDate, extra)
}

func (m *mockAccounting) GetCashFlow(_ context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return m.record("GetCashFlow", company, fromDate, toDate, extra)
}

func (m *mockAccounting) GetTrialBalance(_ context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return m.record("GetTrialBalance", company, fromDate, toDate, extra)
}

func (m *mockAccounting) GetGeneralLedger(_ context.Context, company, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return m.record("GetGeneralLedger", company, fromDate, toDate, extra)
}

var _ driving.SalesService = (*mockSales)(nil)

type mockSales struct{ callRecorder }

func (m *mockSales) CreateSalesOrder(_ context.Context, customer string, items []domain.Record, deliveryDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSalesOrder", customer, items, deliveryDate, extra)
}

func (m *mockSales) CreateCustomer(_ context.Context, customerName, customerType, email, phone string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateCustomer", customerName, customerType, email, phone, extra)
}

func (m *mockSales) CreateQuotation(_ context.Context, quotationTo, partyName string, items []domain.Record, validTill string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateQuotation", quotationTo, partyName, items, validTill, extra)
}

func (m *mockSales) CreateDeliveryNote(_ context.Context, customer string, items []domain.Record, postingDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateDeliveryNote", customer, items, postingDate, extra)
}

func (m *mockSales) CreateSalesReturn(_ context.Context, returnAgainst string, items []domain.Record, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSalesReturn", returnAgainst, items, extra)
}

func (m *mockSales) SubmitDeliveryNote(_ context.Context, dnName string) *domain.OperationResult {
	return m.record("SubmitDeliveryNote", dnName)
}

func (m *mockSales) GetSalesOrder(_ context.Context, soName string) *domain.OperationResult {
	return m.record("GetSalesOrder", soName)
}

func (m *mockSales) GetCustomer(_ context.Context, customerName string) *domain.OperationResult {
	return m.record("GetCustomer", customerName)
}

func (m *mockSales) GetCustomersList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetCustomersList", limit)
}

func (m *mockSales) GetSalesOrdersList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetSalesOrdersList", limit)
}

func (m *mockSales) GetDeliveryNotesList(_ context.Context, customer, status string, limit int) *domain.OperationResult {
	return m.record("GetDeliveryNotesList", customer, status, limit)
}

func (m *mockSales) SearchCustomers(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchCustomers", query, limit)
}

func (m *mockSales) ApproveSalesOrder(_ context.Context, soName string) *domain.OperationResult {
	return m.record("ApproveSalesOrder", soName)
}

var _ driving.PurchasingService = (*mockPurchasing)(nil)

type mockPurchasing struct{ callRecorder }

func (m *mockPurchasing) CreatePurchaseOrder(_ context.Context, supplier string, items []domain.Record, scheduleDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePurchaseOrder", supplier, items, scheduleDate, extra)
}

func (m *mockPurchasing) ApprovePurchaseOrder(_ context.Context, poName string) *domain.OperationResult {
	return m.record("ApprovePurchaseOrder", poName)
}

func (m *mockPurchasing) CreateSupplier(_ context.Context, supplierName, supplierType, email, phone string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSupplier", supplierName, supplierType, email, phone, extra)
}

func (m *mockPurchasing) CreateSupplierQuotation(_ context.Context, supplier string, items []domain.Record, validTill string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSupplierQuotation", supplier, items, validTill, extra)
}

func (m *mockPurchasing) CreatePurchaseReceipt(_ context.Context, supplier string, items []domain.Record, postingDate, purchaseOrder string, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePurchaseReceipt", supplier, items, postingDate, purchaseOrder, extra)
}

func (m *mockPurchasing) CreatePurchaseReturn(_ context.Context, returnAgainst string, items []domain.Record, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePurchaseReturn", returnAgainst, items, extra)
}

func (m *mockPurchasing) SubmitPurchaseReceipt(_ context.Context, prName string) *domain.OperationResult {
	return m.record("SubmitPurchaseReceipt", prName)
}

func (m *mockPurchasing) GetPurchaseOrder(_ context.Context, poName string) *domain.OperationResult {
	return m.record("GetPurchaseOrder", poName)
}

func (m *mockPurchasing) GetPurchaseOrdersList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetPurchaseOrdersList", limit)
}

func (m *mockPurchasing) GetSupplier(_ context.Context, supplierName string) *domain.OperationResult {
	return m.record("GetSupplier", supplierName)
}

func (m *mockPurchasing) GetSuppliersList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetSuppliersList", limit)
}

func (m *mockPurchasing) GetSupplierQuotationsList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetSupplierQuotationsList", limit)
}

func (m *mockPurchasing) GetPurchaseReceiptsList(_ context.Context, supplier, status string, limit int) *domain.OperationResult {
	return m.record("GetPurchaseReceiptsList", supplier, status, limit)
}

func (m *mockPurchasing) SearchSuppliers(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchSuppliers", query, limit)
}

var _ driving.InventoryService = (*mockInventory)(nil)

type mockInventory struct{ callRecorder }

func (m *mockInventory) CreateItem(_ context.Context, itemCode, itemName, itemGroup, stockUOM string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateItem", itemCode, itemName, itemGroup, stockUOM, extra)
}

func (m *mockInventory) CreateWarehouse(_ context.Context, warehouseName, warehouseType string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateWarehouse", warehouseName, warehouseType, extra)
}

func (m *mockInventory) CreateStockEntry(_ context.Context, stockEntryType string, items []domain.Record, postingDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateStockEntry", stockEntryType, items, postingDate, extra)
}

func (m *mockInventory) SubmitStockEntry(_ context.Context, entryName string) *domain.OperationResult {
	return m.record("SubmitStockEntry", entryName)
}

func (m *mockInventory) GetItem(_ context.Context, itemCode string) *domain.OperationResult {
	return m.record("GetItem", itemCode)
}

func (m *mockInventory) GetItemsList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetItemsList", limit)
}

func (m *mockInventory) SearchItems(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchItems", query, limit)
}

func (m *mockInventory) GetStockBalance(_ context.Context, itemCode, warehouse string) *domain.OperationResult {
	return m.record("GetStockBalance", itemCode, warehouse)
}

func (m *mockInventory) GetWarehousesList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetWarehousesList", limit)
}

func (m *mockInventory) GetStockEntriesList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetStockEntriesList", limit)
}

func (m *mockInventory) CreateItemPrice(_ context.Context, itemCode, priceList string, priceListRate float64, extra domain.Record) *domain.OperationResult {
	return m.record("CreateItemPrice", itemCode, priceList, priceListRate, extra)
}

func (m *mockInventory) CreatePriceList(_ context.Context, priceListName, currency string, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePriceList", priceListName, currency, extra)
}

func (m *mockInventory) CreateBatch(_ context.Context, batchID, item string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateBatch", batchID, item, extra)
}

func (m *mockInventory) CreateSerialNo(_ context.Context, serialNo, itemCode string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSerialNo", serialNo, itemCode, extra)
}

func (m *mockInventory) GetStockReport(_ context.Context, warehouse, itemGroup string, limit int) *domain.OperationResult {
	return m.record("GetStockReport", warehouse, itemGroup, limit)
}

func (m *mockInventory) GetItemPrices(_ context.Context, itemCode, priceList string) *domain.OperationResult {
	return m.record("GetItemPrices", itemCode, priceList)
}

var _ driving.HRService = (*mockHR)(nil)

type mockHR struct{ callRecorder }

func (m *mockHR) CreateEmployee(_ context.Context, employeeName, dateOfJoining, department, designation string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateEmployee", employeeName, dateOfJoining, department, designation, extra)
}

func (m *mockHR) MarkAttendance(_ context.Context, employee, attendanceDate, status string, extra domain.Record) *domain.OperationResult {
	return m.record("MarkAttendance", employee, attendanceDate, status, extra)
}

func (m *mockHR) CreateLeaveApplication(_ context.Context, employee, leaveType, fromDate, toDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateLeaveApplication", employee, leaveType, fromDate, toDate, extra)
}

func (m *mockHR) ApproveLeaveApplication(_ context.Context, leaveApplicationName string) *domain.OperationResult {
	return m.record("ApproveLeaveApplication", leaveApplicationName)
}

func (m *mockHR) GetEmployee(_ context.Context, employeeID string) *domain.OperationResult {
	return m.record("GetEmployee", employeeID)
}

func (m *mockHR) GetEmployeesList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetEmployeesList", limit)
}

func (m *mockHR) SearchEmployees(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchEmployees", query, limit)
}

func (m *mockHR) GetAttendanceList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetAttendanceList", limit)
}

func (m *mockHR) GetLeaveApplicationsList(_ context.Context, employee, status string, limit int) *domain.OperationResult {
	return m.record("GetLeaveApplicationsList", employee, status, limit)
}

func (m *mockHR) GetEmployeeAttendanceSummary(_ context.Context, employee, fromDate, toDate string) *domain.OperationResult {
	return m.record("GetEmployeeAttendanceSummary", employee, fromDate, toDate)
}

func (m *mockHR) CreateSalaryStructure(_ context.Context, name, company, employee string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSalaryStructure", name, company, employee, extra)
}

func (m *mockHR) CreateSalarySlip(_ context.Context, employee, startDate, endDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateSalarySlip", employee, startDate, endDate, extra)
}

func (m *mockHR) CreateJobApplicant(_ context.Context, applicantName, jobTitle string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateJobApplicant", applicantName, jobTitle, extra)
}

var _ driving.ProjectsService = (*mockProjects)(nil)

type mockProjects struct{ callRecorder }

func (m *mockProjects) CreateProject(_ context.Context, projectName, projectType, customer, expectedStartDate, expectedEndDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateProject", projectName, projectType, customer, expectedStartDate, expectedEndDate, extra)
}

func (m *mockProjects) CreateTask(_ context.Context, subject, project, priority, status, assignedTo, expectedStartDate, expectedEndDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateTask", subject, project, priority, status, assignedTo, expectedStartDate, expectedEndDate, extra)
}

func (m *mockProjects) LogTime(_ context.Context, employee string, hours float64, activityType, fromTime, toTime, project, task string, extra domain.Record) *domain.OperationResult {
	return m.record("LogTime", employee, hours, activityType, fromTime, toTime, project, task, extra)
}

func (m *mockProjects) GetProject(_ context.Context, projectName string) *domain.OperationResult {
	return m.record("GetProject", projectName)
}

func (m *mockProjects) GetTask(_ context.Context, taskName string) *domain.OperationResult {
	return m.record("GetTask", taskName)
}

func (m *mockProjects) GetProjectsList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetProjectsList", limit)
}

func (m *mockProjects) GetTasksList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetTasksList", limit)
}

func (m *mockProjects) UpdateTaskStatus(_ context.Context, taskName, status string) *domain.OperationResult {
	return m.record("UpdateTaskStatus", taskName, status)
}

func (m *mockProjects) GetProjectTasks(_ context.Context, projectName string) *domain.OperationResult {
	return m.record("GetProjectTasks", projectName)
}

func (m *mockProjects) GetTimesheetsList(_ context.Context, limit int) *domain.OperationResult {
	return m.record("GetTimesheetsList", limit)
}

var _ driving.ManufacturingService = (*mockManufacturing)(nil)

type mockManufacturing struct{ callRecorder }

func (m *mockManufacturing) CreateBOM(_ context.Context, item string, items []domain.Record, quantity float64, extra domain.Record) *domain.OperationResult {
	return m.record("CreateBOM", item, items, quantity, extra)
}

func (m *mockManufacturing) CreateWorkOrder(_ context.Context, productionItem, bomNo string, qty float64, plannedStartDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateWorkOrder", productionItem, bomNo, qty, plannedStartDate, extra)
}

func (m *mockManufacturing) CreateProductionPlan(_ context.Context, company, forWarehouse string, items []domain.Record, extra domain.Record) *domain.OperationResult {
	return m.record("CreateProductionPlan", company, forWarehouse, items, extra)
}

func (m *mockManufacturing) CreateJobCard(_ context.Context, workOrder, operation, workstation string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateJobCard", workOrder, operation, workstation, extra)
}

func (m *mockManufacturing) CreateQualityInspection(_ context.Context, inspectionType, referenceType, referenceName, itemCode string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateQualityInspection", inspectionType, referenceType, referenceName, itemCode, extra)
}

func (m *mockManufacturing) StartWorkOrder(_ context.Context, workOrderName string) *domain.OperationResult {
	return m.record("StartWorkOrder", workOrderName)
}

func (m *mockManufacturing) CompleteWorkOrder(_ context.Context, workOrderName string) *domain.OperationResult {
	return m.record("CompleteWorkOrder", workOrderName)
}

func (m *mockManufacturing) GetWorkOrdersList(_ context.Context, status string, limit int) *domain.OperationResult {
	return m.record("GetWorkOrdersList", status, limit)
}

func (m *mockManufacturing) GetBOMList(_ context.Context, item string, limit int) *domain.OperationResult {
	return m.record("GetBOMList", item, limit)
}

var _ driving.CRMService = (*mockCRM)(nil)

type mockCRM struct{ callRecorder }

func (m *mockCRM) CreateLead(_ context.Context, leadName, status string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateLead", leadName, status, extra)
}

func (m *mockCRM) CreateOpportunity(_ context.Context, opportunityFrom, partyName, opportunityType string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateOpportunity", opportunityFrom, partyName, opportunityType, extra)
}

func (m *mockCRM) CreateCampaign(_ context.Context, campaignName string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateCampaign", campaignName, extra)
}

func (m *mockCRM) ConvertLeadToCustomer(_ context.Context, leadName string) *domain.OperationResult {
	return m.record("ConvertLeadToCustomer", leadName)
}

func (m *mockCRM) ConvertLeadToOpportunity(_ context.Context, leadName string) *domain.OperationResult {
	return m.record("ConvertLeadToOpportunity", leadName)
}

func (m *mockCRM) UpdateOpportunityStatus(_ context.Context, opportunityName, status string) *domain.OperationResult {
	return m.record("UpdateOpportunityStatus", opportunityName, status)
}

func (m *mockCRM) SearchLeads(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchLeads", query, limit)
}

func (m *mockCRM) GetLeadsList(_ context.Context, status string, limit int) *domain.OperationResult {
	return m.record("GetLeadsList", status, limit)
}

func (m *mockCRM) GetOpportunitiesList(_ context.Context, status string, limit int) *domain.OperationResult {
	return m.record("GetOpportunitiesList", status, limit)
}

var _ driving.AssetsService = (*mockAssets)(nil)

type mockAssets struct{ callRecorder }

func (m *mockAssets) CreateAsset(_ context.Context, assetName, assetCategory, itemCode string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateAsset", assetName, assetCategory, itemCode, extra)
}

func (m *mockAssets) CreateAssetCategory(_ context.Context, assetCategoryName string, totalNumberOfDepreciations, frequencyOfDepreciation int, extra domain.Record) *domain.OperationResult {
	return m.record("CreateAssetCategory", assetCategoryName, totalNumberOfDepreciations, frequencyOfDepreciation, extra)
}

func (m *mockAssets) CreateAssetMaintenance(_ context.Context, asset, maintenanceType, periodicity string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateAssetMaintenance", asset, maintenanceType, periodicity, extra)
}

func (m *mockAssets) CreateAssetMovement(_ context.Context, asset, purpose string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateAssetMovement", asset, purpose, extra)
}

func (m *mockAssets) CreateAssetDepreciation(_ context.Context, asset string) *domain.OperationResult {
	return m.record("CreateAssetDepreciation", asset)
}

func (m *mockAssets) TransferAsset(_ context.Context, asset, targetLocation, toEmployee string, extra domain.Record) *domain.OperationResult {
	return m.record("TransferAsset", asset, targetLocation, toEmployee, extra)
}

func (m *mockAssets) GetAssetsList(_ context.Context, assetCategory, status string, limit int) *domain.OperationResult {
	return m.record("GetAssetsList", assetCategory, status, limit)
}

func (m *mockAssets) GetAssetMaintenanceList(_ context.Context, asset string, limit int) *domain.OperationResult {
	return m.record("GetAssetMaintenanceList", asset, limit)
}

func (m *mockAssets) SearchAssets(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchAssets", query, limit)
}

var _ driving.SupportService = (*mockSupport)(nil)

type mockSupport struct{ callRecorder }

func (m *mockSupport) CreateIssue(_ context.Context, subject, customer, issueType, priority string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateIssue", subject, customer, issueType, priority, extra)
}

func (m *mockSupport) CreateServiceLevelAgreement(_ context.Context, serviceLevel, customer, startDate, endDate string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateServiceLevelAgreement", serviceLevel, customer, startDate, endDate, extra)
}

func (m *mockSupport) CreateWarrantyClaim(_ context.Context, customer, itemCode, serialNo string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateWarrantyClaim", customer, itemCode, serialNo, extra)
}

func (m *mockSupport) UpdateIssueStatus(_ context.Context, issueName, status string) *domain.OperationResult {
	return m.record("UpdateIssueStatus", issueName, status)
}

func (m *mockSupport) AssignIssue(_ context.Context, issueName, assignedTo string) *domain.OperationResult {
	return m.record("AssignIssue", issueName, assignedTo)
}

func (m *mockSupport) CloseIssue(_ context.Context, issueName, resolution string) *domain.OperationResult {
	return m.record("CloseIssue", issueName, resolution)
}

func (m *mockSupport) GetIssuesList(_ context.Context, customer, status, priority string, limit int) *domain.OperationResult {
	return m.record("GetIssuesList", customer, status, priority, limit)
}

func (m *mockSupport) GetWarrantyClaimsList(_ context.Context, customer, status string, limit int) *domain.OperationResult {
	return m.record("GetWarrantyClaimsList", customer, status, limit)
}

func (m *mockSupport) SearchIssues(_ context.Context, query string, limit int) *domain.OperationResult {
	return m.record("SearchIssues", query, limit)
}

var _ driving.UtilitiesService = (*mockUtilities)(nil)

type mockUtilities struct{ callRecorder }

func (m *mockUtilities) CreateWorkflow(_ context.Context, workflowName, documentType string, states, transitions []domain.Record, extra domain.Record) *domain.OperationResult {
	return m.record("CreateWorkflow", workflowName, documentType, states, transitions, extra)
}

func (m *mockUtilities) CreatePrintFormat(_ context.Context, printFormatName, docType string, extra domain.Record) *domain.OperationResult {
	return m.record("CreatePrintFormat", printFormatName, docType, extra)
}

func (m *mockUtilities) CreateCustomField(_ context.Context, dt, fieldname, fieldtype, label string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateCustomField", dt, fieldname, fieldtype, label, extra)
}

func (m *mockUtilities) CreateNotification(_ context.Context, subject, documentType string, recipients []string, extra domain.Record) *domain.OperationResult {
	return m.record("CreateNotification", subject, documentType, recipients, extra)
}

func (m *mockUtilities) BackupDatabase(_ context.Context) *domain.OperationResult {
	return m.record("BackupDatabase")
}

func (m *mockUtilities) GetSystemSettings(_ context.Context) *domain.OperationResult {
	return m.record("GetSystemSettings")
}

func (m *mockUtilities) ExecuteReport(_ context.Context, reportName string, filters domain.Record) *domain.OperationResult {
	return m.record("ExecuteReport", reportName, filters)
}

func (m *mockUtilities) GetDocumentPermissions(_ context.Context, doctype, name string) *domain.OperationResult {
	return m.record("GetDocumentPermissions", doctype, name)
}

func (m *mockUtilities) BulkUpdateDocuments(_ context.Context, doctype string, filters domain.Record, updateFields domain.Record) *domain.OperationResult {
	return m.record("BulkUpdateDocuments", doctype, filters, updateFields)
}

func (m *mockUtilities) GetDashboardData(_ context.Context, dashboardName string) *domain.OperationResult {
	return m.record("GetDashboardData", dashboardName)
}

// testPorts returns a Ports value backed entirely by fresh mocks.
func testPorts() (*Ports, *mocks) {
	m := &mocks{
		accounting:    &mockAccounting{},
		sales:         &mockSales{},
		purchasing:    &mockPurchasing{},
		inventory:     &mockInventory{},
		hr:            &mockHR{},
		projects:      &mockProjects{},
		manufacturing: &mockManufacturing{},
		crm:           &mockCRM{},
		assets:        &mockAssets{},
		support:       &mockSupport{},
		utilities:     &mockUtilities{},
	}
	return &Ports{
		Accounting:    m.accounting,
		Sales:         m.sales,
		Purchasing:    m.purchasing,
		Inventory:     m.inventory,
		HR:            m.hr,
		Projects:      m.projects,
		Manufacturing: m.manufacturing,
		CRM:           m.crm,
		Assets:        m.assets,
		Support:       m.support,
		Utilities:     m.utilities,
	}, m
}

type mocks struct {
	accounting    *mockAccounting
	sales         *mockSales
	purchasing    *mockPurchasing
	inventory     *mockInventory
	hr            *mockHR
	projects      *mockProjects
	manufacturing *mockManufacturing
	crm           *mockCRM
	assets        *mockAssets
	support       *mockSupport
	utilities     *mockUtilities
}
