package domain

// Filter is one list-query condition in Frappe's triplet form:
// field, operator, value (e.g. {"status", "=", "Open"}).
type Filter struct {
	Field    string
	Operator string
	Value    any
}

// Eq builds an equality filter, the overwhelmingly common case.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Operator: "=", Value: value}
}

// Like builds a substring-match filter. The value is wrapped in SQL
// LIKE wildcards by the caller where needed.
func Like(field string, pattern string) Filter {
	return Filter{Field: field, Operator: "like", Value: pattern}
}
