package person

// CreateInput carries the caller-supplied fields of a new person.
// Identifier and timestamps are store defaults.
type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       *int
	City      *string
	Country   *string
}

// UpdateInput carries only the fields present in the request; nil fields
// leave the stored value unchanged. The zero value is a legal update
// that only advances the update timestamp.
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	City      *string
	Country   *string
}

// ListQuery selects one page. Search is a case-insensitive substring
// filter over first name, last name, email, city and country.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}
