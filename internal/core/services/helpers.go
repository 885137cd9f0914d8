package services

import (
	"strings"

	"github.com/asisaga/erpnext-mcp/internal/core/domain"
)

const (
	defaultListLimit   = 20
	defaultSearchLimit = 10
)

// mapAndValidate runs the shared create pipeline up to dispatch:
// business names become DocType fields, then required fields are
// checked against the mapped record.
func mapAndValidate(rec domain.Record, doctype domain.DocType) (domain.Record, error) {
	mapped := domain.MapRecord(rec, doctype)
	if missing := domain.MissingRequired(mapped, doctype); len(missing) > 0 {
		err := domain.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
		err.Details = map[string]any{"missing_fields": missing}
		return nil, err
	}
	return mapped, nil
}

// setIfNotEmpty adds an optional scalar parameter only when the caller
// supplied it, so absent optionals never fail validation or overwrite
// server defaults.
func setIfNotEmpty(rec domain.Record, key, value string) {
	if value != "" {
		rec[key] = value
	}
}

func listLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}

func searchLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	return limit
}

// orDefault substitutes a default for an unset string parameter.
func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
