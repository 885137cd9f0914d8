// Package domain contains the core business types for the ERPNext MCP
// server: the DocType enumeration, the business-parameter field mapping
// and required-field validation tables, the operation result envelope,
// and the operation error taxonomy.
//
// Everything in this package is pure: no I/O, no shared mutable state.
package domain
