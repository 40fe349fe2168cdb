package contract

// Pagination bounds shared by every list endpoint.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery mirrors the query parameters of the list endpoints. Pages
// are offset-based: a record may be skipped or repeated across pages
// under concurrent writes, which is a documented trade-off of this API.
type ListQuery struct {
	Limit  int
	Offset int
	Search string
}
