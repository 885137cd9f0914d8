package mcp

import (
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	Accounting    driving.AccountingService
	Sales         driving.SalesService
	Purchasing    driving.PurchasingService
	Inventory     driving.InventoryService
	HR            driving.HRService
	Projects      driving.ProjectsService
	Manufacturing driving.ManufacturingService
	CRM           driving.CRMService
	Assets        driving.AssetsService
	Support       driving.SupportService
	Utilities     driving.UtilitiesService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	switch {
	case p.Accounting == nil:
		return ErrMissingAccountingService
	case p.Sales == nil:
		return ErrMissingSalesService
	case p.Purchasing == nil:
		return ErrMissingPurchasingService
	case p.Inventory == nil:
		return ErrMissingInventoryService
	case p.HR == nil:
		return ErrMissingHRService
	case p.Projects == nil:
		return ErrMissingProjectsService
	case p.Manufacturing == nil:
		return ErrMissingManufacturingService
	case p.CRM == nil:
		return ErrMissingCRMService
	case p.Assets == nil:
		return ErrMissingAssetsService
	case p.Support == nil:
		return ErrMissingSupportService
	case p.Utilities == nil:
		return ErrMissingUtilitiesService
	}
	return nil
}
