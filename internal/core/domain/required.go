package domain

// requiredFields lists the mandatory fields per DocType, in the order
// validation failures should be reported. The table is intentionally
// sparse: DocTypes not listed have no client-side required fields. The
// authoritative schema lives in ERPNext itself; this check exists only
// to fail fast with a friendly message before a network round trip.
var requiredFields = map[DocType][]string{
	DocTypeCustomer:        {"customer_name", "customer_type"},
	DocTypeSupplier:        {"supplier_name", "supplier_type"},
	DocTypeItem:            {"item_code", "item_name", "item_group"},
	DocTypeSalesInvoice:    {"customer", "posting_date", "items"},
	DocTypePurchaseInvoice: {"supplier", "posting_date", "items"},
	DocTypeSalesOrder:      {"customer", "delivery_date", "items"},
	DocTypePurchaseOrder:   {"supplier", "schedule_date", "items"},
	DocTypePaymentEntry:    {"payment_type", "party_type", "party", "paid_amount"},
	DocTypeEmployee:        {"employee_name", "date_of_joining"},
	DocTypeProject:         {"project_name"},
	DocTypeTask:            {"subject"},
}

// RequiredFields returns the mandatory field names for a DocType, in
// declared order. DocTypes without an entry yield nil.
func RequiredFields(doctype DocType) []string {
	fields, ok := requiredFields[doctype]
	if !ok {
		return nil
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// MissingRequired reports which required fields are absent or nil in a
// mapped record, in the table's declared order. An empty result means
// the record passes. The check never raises false negatives: a required
// field that is missing or nil is always reported.
func MissingRequired(rec Record, doctype DocType) []string {
	var missing []string
	for _, field := range requiredFields[doctype] {
		if v, ok := rec[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	return missing
}
