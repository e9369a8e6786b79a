package dto

import "intranet-portal/internal/domain"

// Error codes used in error envelopes.
const (
	CodeInvalidPage   = "INVALID_PAGE"
	CodeInvalidLimit  = "INVALID_LIMIT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Envelope is the common response shape for all API endpoints.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries a human-readable message and a machine-readable code.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKPaginated wraps data and pagination metadata in a success envelope.
func OKPaginated(data interface{}, meta domain.PageMeta) Envelope {
	return Envelope{Success: true, Data: data, Meta: meta}
}

// Error builds an error envelope.
func Error(message, code string) Envelope {
	return Envelope{Success: false, Error: &APIError{Message: message, Code: code}}
}

// SearchMeta extends pagination metadata with the echoed query and the
// request execution time in milliseconds.
type SearchMeta struct {
	domain.PageMeta
	Query         QueryEcho `json:"query"`
	ExecutionTime int64     `json:"executionTime"`
}

// QueryEcho mirrors the search parameters back to the client.
type QueryEcho struct {
	Q          string   `json:"q"`
	Type       string   `json:"type,omitempty"`
	Author     string   `json:"author,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Department string   `json:"department,omitempty"`
	DateFrom   string   `json:"dateFrom,omitempty"`
	DateTo     string   `json:"dateTo,omitempty"`
	SortBy     string   `json:"sortBy"`
	SortOrder  string   `json:"sortOrder"`
}

// EchoQuery converts a domain search query into its response echo.
func EchoQuery(q domain.SearchQuery) QueryEcho {
	return QueryEcho{
		Q:          q.Query,
		Type:       string(q.Type),
		Author:     q.Author,
		Tags:       q.Tags,
		Department: q.Department,
		DateFrom:   q.DateFrom,
		DateTo:     q.DateTo,
		SortBy:     string(q.SortBy),
		SortOrder:  string(q.SortOrder),
	}
}
