package mcp

// registerTools registers all tool handlers with the MCP server, one
// group per business area.
func (s *Server) registerTools() {
	s.registerAccountingTools()
	s.registerSalesTools()
	s.registerPurchasingTools()
	s.registerInventoryTools()
	s.registerHRTools()
	s.registerProjectsTools()
	s.registerManufacturingTools()
	s.registerCRMTools()
	s.registerAssetsTools()
	s.registerSupportTools()
	s.registerUtilitiesTools()
}
