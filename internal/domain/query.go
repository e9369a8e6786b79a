package domain

import "errors"

// SortOrder represents the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortField represents the field to sort by.
type SortField string

const (
	SortFieldRelevance  SortField = "relevance"
	SortFieldCreatedAt  SortField = "createdAt"
	SortFieldUpdatedAt  SortField = "updatedAt"
	SortFieldTitle      SortField = "title"
	SortFieldName       SortField = "name"
	SortFieldEmail      SortField = "email"
	SortFieldDepartment SortField = "department"
)

// Pagination validation errors. Handlers map these to the INVALID_PAGE and
// INVALID_LIMIT response codes.
var (
	ErrInvalidPage  = errors.New("page number must be greater than 0")
	ErrInvalidLimit = errors.New("limit must be between 1 and 100")
)

// Pagination holds the page/limit pair shared by every paginated query.
type Pagination struct {
	Page  int
	Limit int
}

// DefaultPagination returns the default pagination (first page, 10 items).
func DefaultPagination() Pagination {
	return Pagination{Page: 1, Limit: 10}
}

// Validate checks pagination bounds. It runs before any filtering or sorting
// work so an invalid request does no processing at all.
func (p Pagination) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.Limit < 1 || p.Limit > 100 {
		return ErrInvalidLimit
	}
	return nil
}

// Offset returns the index of the first item on the requested page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ContentQuery holds filter, sort and pagination parameters for content
// listing. DateFrom and DateTo are kept as raw strings: a value that fails to
// parse simply does not constrain the result set.
type ContentQuery struct {
	Type      ContentType
	Author    string
	Tags      []string
	DateFrom  string
	DateTo    string
	SortBy    SortField
	SortOrder SortOrder
	Pagination
}

// DefaultContentQuery returns a content query with endpoint defaults
// (createdAt descending).
func DefaultContentQuery() ContentQuery {
	return ContentQuery{
		SortBy:     SortFieldCreatedAt,
		SortOrder:  SortOrderDesc,
		Pagination: DefaultPagination(),
	}
}

// SearchQuery extends ContentQuery with a free-text query and a department
// filter for the search endpoint.
type SearchQuery struct {
	ContentQuery
	Query      string
	Department string
}

// DefaultSearchQuery returns a search query with endpoint defaults
// (relevance descending).
func DefaultSearchQuery() SearchQuery {
	q := SearchQuery{ContentQuery: DefaultContentQuery()}
	q.SortBy = SortFieldRelevance
	return q
}

// UserQuery holds filter, sort and pagination parameters for user listing.
type UserQuery struct {
	Department string
	Search     string
	SortBy     SortField
	SortOrder  SortOrder
	Pagination
}

// DefaultUserQuery returns a user query with endpoint defaults
// (name ascending).
func DefaultUserQuery() UserQuery {
	return UserQuery{
		SortBy:     SortFieldName,
		SortOrder:  SortOrderAsc,
		Pagination: DefaultPagination(),
	}
}
