package domain

import "sort"

// DoctypeField is the key injected into every mapped record.
const DoctypeField = "doctype"

// FieldMapping associates one business-friendly parameter name with the
// ERPNext field name it translates to.
type FieldMapping struct {
	Business string
	Target   string
}

// fieldMappings is the static translation table. Order matters: entries
// are applied in declared order, so when two business aliases target
// the same field (e.g. "id" and "invoice_number" both map to "name"),
// the later entry wins deterministically.
var fieldMappings = []FieldMapping{
	// Common fields
	{"id", "name"},
	{"title", "title"},
	{"description", "description"},
	{"date", "posting_date"},
	{"due_date", "due_date"},
	{"status", "status"},

	// Customer/Supplier fields
	{"customer_name", "customer_name"},
	{"customer_email", "email_id"},
	{"customer_phone", "mobile_no"},
	{"supplier_name", "supplier_name"},
	{"supplier_email", "email_id"},
	{"supplier_phone", "mobile_no"},

	// Invoice fields
	{"invoice_number", "name"},
	{"invoice_date", "posting_date"},
	{"grand_total", "grand_total"},
	{"net_total", "net_total"},
	{"tax_amount", "total_taxes_and_charges"},

	// Item fields
	{"item_code", "item_code"},
	{"item_name", "item_name"},
	{"item_group", "item_group"},
	{"unit_price", "standard_rate"},
	{"quantity", "qty"},
	{"amount", "amount"},

	// Project fields
	{"project_name", "project_name"},
	{"project_description", "description"},
	{"start_date", "project_start_date"},
	{"end_date", "project_end_date"},

	// Employee fields
	{"employee_name", "employee_name"},
	{"employee_number", "employee"},
	{"department", "department"},
	{"designation", "designation"},
	{"join_date", "date_of_joining"},
}

// FieldMappings returns a copy of the translation table in declared
// order. Used by the discovery resources.
func FieldMappings() []FieldMapping {
	out := make([]FieldMapping, len(fieldMappings))
	copy(out, fieldMappings)
	return out
}

// MapRecord translates business-friendly parameter names into DocType
// field names. Keys with a table entry are renamed; unknown keys pass
// through verbatim so forward-compatible callers cannot break the
// mapper. Values are copied unchanged, never inspected. The doctype key
// is injected last and overwrites any caller-supplied value.
//
// Processing is order-stable regardless of map iteration order: table
// entries apply in declared order, then unmapped keys in sorted order.
// A caller-supplied key already in target vocabulary therefore wins
// over a mapped alias of the same target field.
func MapRecord(rec Record, doctype DocType) Record {
	mapped := make(Record, len(rec)+1)

	consumed := make(map[string]bool, len(rec))
	for _, fm := range fieldMappings {
		if v, ok := rec[fm.Business]; ok {
			mapped[fm.Target] = v
			consumed[fm.Business] = true
		}
	}

	rest := make([]string, 0, len(rec))
	for k := range rec {
		if !consumed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		mapped[k] = rec[k]
	}

	mapped[DoctypeField] = string(doctype)
	return mapped
}
