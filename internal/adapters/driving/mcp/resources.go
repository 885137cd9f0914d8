package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ERPNext resources.
	uriScheme = "erpnext://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the supported document types.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "doctypes",
		Name:        "doctypes",
		Description: "Document types this server can operate on, with their required fields",
		MIMEType:    "application/json",
	}, s.handleDoctypesResource)

	// Static resource for the business-to-ERPNext field translation
	// table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "field-mappings",
		Name:        "field-mappings",
		Description: "Business-friendly parameter names and the ERPNext fields they map to",
		MIMEType:    "application/json",
	}, s.handleFieldMappingsResource)

	// Template for per-doctype required fields.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "doctypes/{doctype}/required-fields",
		Name:        "doctype-required-fields",
		Description: "Fields that must be present to create a document of the given type",
		MIMEType:    "application/json",
	}, s.handleRequiredFieldsResource)
}

// handleDoctypesResource returns every supported doctype with its
// required fields.
func (s *Server) handleDoctypesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type doctypeInfo struct {
		Doctype        string   `json:"doctype"`
		RequiredFields []string `json:"required_fields,omitempty"`
	}

	doctypes := domain.AllDocTypes()
	infos := make([]doctypeInfo, len(doctypes))
	for i, dt := range doctypes {
		infos[i] = doctypeInfo{
			Doctype:        dt.String(),
			RequiredFields: domain.RequiredFields(dt),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling doctypes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFieldMappingsResource returns the field translation table.
func (s *Server) handleFieldMappingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type mappingInfo struct {
		Business string `json:"business"`
		Target   string `json:"target"`
	}

	mappings := domain.FieldMappings()
	infos := make([]mappingInfo, len(mappings))
	for i, fm := range mappings {
		infos[i] = mappingInfo{Business: fm.Business, Target: fm.Target}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling field mappings: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRequiredFieldsResource returns the required fields for one
// doctype.
func (s *Server) handleRequiredFieldsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name, ok := extractDoctype(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var doctype domain.DocType
	for _, dt := range domain.AllDocTypes() {
		if dt.String() == name {
			doctype = dt
			break
		}
	}
	if doctype == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	fields := domain.RequiredFields(doctype)
	if fields == nil {
		fields = []string{}
	}

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling required fields: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDoctype extracts the doctype from a URI like
// erpnext://doctypes/{doctype}/required-fields. Doctype names contain
// spaces, so the segment may arrive percent-encoded.
func extractDoctype(uri string) (string, bool) {
	rest, found := strings.CutPrefix(uri, uriScheme+"doctypes/")
	if !found {
		return "", false
	}
	rest, found = strings.CutSuffix(rest, "/required-fields")
	if !found || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	name, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return name, true
}
