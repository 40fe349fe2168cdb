package org

// CreateInput carries the caller-supplied fields of a new organization.
type CreateInput struct {
	Name     string
	Website  *string
	Industry *string
	City     *string
	Country  *string
}

// UpdateInput carries only the fields present in the request; nil fields
// leave the stored value unchanged.
type UpdateInput struct {
	Name     *string
	Website  *string
	Industry *string
	City     *string
	Country  *string
}

// ListQuery selects one page. Search is a case-insensitive substring
// filter over name, industry, city and country.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}
