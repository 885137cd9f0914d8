// Package mcp provides an MCP (Model Context Protocol) server adapter
// for ERPNext. It exposes the business services as MCP tools and the
// field-mapping tables as MCP resources, so AI assistants can operate
// an ERPNext instance through a stable, typed surface.
package mcp

import "errors"

// Sentinel errors returned by Ports.Validate when a required service is
// not provided.
var (
	ErrMissingAccountingService    = errors.New("mcp: accounting service is required")
	ErrMissingSalesService         = errors.New("mcp: sales service is required")
	ErrMissingPurchasingService    = errors.New("mcp: purchasing service is required")
	ErrMissingInventoryService     = errors.New("mcp: inventory service is required")
	ErrMissingHRService            = errors.New("mcp: hr service is required")
	ErrMissingProjectsService      = errors.New("mcp: projects service is required")
	ErrMissingManufacturingService = errors.New("mcp: manufacturing service is required")
	ErrMissingCRMService           = errors.New("mcp: crm service is required")
	ErrMissingAssetsService        = errors.New("mcp: assets service is required")
	ErrMissingSupportService       = errors.New("mcp: support service is required")
	ErrMissingUtilitiesService     = errors.New("mcp: utilities service is required")
)
