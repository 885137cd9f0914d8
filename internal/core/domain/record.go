package domain

// Record is a loosely-typed field-name-to-value mapping. Callers supply
// business-friendly names (a BusinessRecord); MapRecord rewrites the
// keys into DocType vocabulary (a MappedRecord). Values may be strings,
// numbers, booleans, lists, or nested mappings and are never inspected
// by the mapping layer.
type Record map[string]any

// Merge returns a copy of r with every entry of extra applied on top.
// A nil extra returns a plain copy. r itself is never modified.
func (r Record) Merge(extra Record) Record {
	out := make(Record, len(r)+len(extra))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
