package domain

// DocType identifies a target ERPNext document schema.
// The set is closed and known at startup.
type DocType string

const (
	// Accounting
	DocTypeSalesInvoice    DocType = "Sales Invoice"
	DocTypePurchaseInvoice DocType = "Purchase Invoice"
	DocTypePaymentEntry    DocType = "Payment Entry"
	DocTypeJournalEntry    DocType = "Journal Entry"
	DocTypeAccount         DocType = "Account"
	DocTypeCostCenter      DocType = "Cost Center"
	DocTypeBudget          DocType = "Budget"
	DocTypeFiscalYear      DocType = "Fiscal Year"

	// Sales
	DocTypeSalesOrder   DocType = "Sales Order"
	DocTypeQuotation    DocType = "Quotation"
	DocTypeCustomer     DocType = "Customer"
	DocTypeDeliveryNote DocType = "Delivery Note"

	// Purchasing
	DocTypePurchaseOrder     DocType = "Purchase Order"
	DocTypeSupplierQuotation DocType = "Supplier Quotation"
	DocTypeSupplier          DocType = "Supplier"
	DocTypePurchaseReceipt   DocType = "Purchase Receipt"

	// Inventory
	DocTypeItem             DocType = "Item"
	DocTypeStockEntry       DocType = "Stock Entry"
	DocTypeWarehouse        DocType = "Warehouse"
	DocTypeItemGroup        DocType = "Item Group"
	DocTypeStockLedgerEntry DocType = "Stock Ledger Entry"
	DocTypeItemPrice        DocType = "Item Price"
	DocTypePriceList        DocType = "Price List"
	DocTypeBatch            DocType = "Batch"
	DocTypeSerialNo         DocType = "Serial No"

	// HR
	DocTypeEmployee         DocType = "Employee"
	DocTypeAttendance       DocType = "Attendance"
	DocTypeLeaveApplication DocType = "Leave Application"
	DocTypeSalarySlip       DocType = "Salary Slip"
	DocTypeSalaryStructure  DocType = "Salary Structure"
	DocTypeJobApplicant     DocType = "Job Applicant"

	// Projects
	DocTypeProject   DocType = "Project"
	DocTypeTask      DocType = "Task"
	DocTypeTimesheet DocType = "Timesheet"

	// Manufacturing
	DocTypeBOM               DocType = "BOM"
	DocTypeWorkOrder         DocType = "Work Order"
	DocTypeProductionPlan    DocType = "Production Plan"
	DocTypeJobCard           DocType = "Job Card"
	DocTypeQualityInspection DocType = "Quality Inspection"

	// CRM
	DocTypeLead        DocType = "Lead"
	DocTypeOpportunity DocType = "Opportunity"
	DocTypeCampaign    DocType = "Campaign"

	// Assets
	DocTypeAsset            DocType = "Asset"
	DocTypeAssetCategory    DocType = "Asset Category"
	DocTypeAssetMaintenance DocType = "Asset Maintenance"
	DocTypeAssetMovement    DocType = "Asset Movement"

	// Support
	DocTypeIssue                 DocType = "Issue"
	DocTypeServiceLevelAgreement DocType = "Service Level Agreement"
	DocTypeWarrantyClaim         DocType = "Warranty Claim"

	// Utilities
	DocTypeWorkflow     DocType = "Workflow"
	DocTypePrintFormat  DocType = "Print Format"
	DocTypeCustomField  DocType = "Custom Field"
	DocTypeNotification DocType = "Notification"

	// System Settings is a singleton document whose name equals its doctype.
	DocTypeSystemSettings DocType = "System Settings"
)

// String returns the ERPNext name of the DocType.
func (d DocType) String() string { return string(d) }

// AllDocTypes returns every DocType the server knows about, grouped in
// declaration order. Used by the discovery resources.
func AllDocTypes() []DocType {
	return []DocType{
		DocTypeSalesInvoice, DocTypePurchaseInvoice, DocTypePaymentEntry,
		DocTypeJournalEntry, DocTypeAccount, DocTypeCostCenter,
		DocTypeBudget, DocTypeFiscalYear,
		DocTypeSalesOrder, DocTypeQuotation, DocTypeCustomer, DocTypeDeliveryNote,
		DocTypePurchaseOrder, DocTypeSupplierQuotation, DocTypeSupplier,
		DocTypePurchaseReceipt,
		DocTypeItem, DocTypeStockEntry, DocTypeWarehouse, DocTypeItemGroup,
		DocTypeStockLedgerEntry, DocTypeItemPrice, DocTypePriceList,
		DocTypeBatch, DocTypeSerialNo,
		DocTypeEmployee, DocTypeAttendance, DocTypeLeaveApplication,
		DocTypeSalarySlip, DocTypeSalaryStructure, DocTypeJobApplicant,
		DocTypeProject, DocTypeTask, DocTypeTimesheet,
		DocTypeBOM, DocTypeWorkOrder, DocTypeProductionPlan,
		DocTypeJobCard, DocTypeQualityInspection,
		DocTypeLead, DocTypeOpportunity, DocTypeCampaign,
		DocTypeAsset, DocTypeAssetCategory, DocTypeAssetMaintenance,
		DocTypeAssetMovement,
		DocTypeIssue, DocTypeServiceLevelAgreement, DocTypeWarrantyClaim,
		DocTypeWorkflow, DocTypePrintFormat, DocTypeCustomField,
		DocTypeNotification,
	}
}
