// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import (
	"strconv"
	"strings"

	"intranet-portal/internal/domain"
)

// ContentRequest represents the query parameters for listing content.
// Page and Limit stay strings so an explicit "0" can be told apart from an
// absent parameter: absent falls back to the default, explicit out-of-range
// values are rejected by the domain validation.
type ContentRequest struct {
	Type      string `query:"type"`
	Author    string `query:"author"`
	Tags      string `query:"tags"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Page      string `query:"page"`
	Limit     string `query:"limit"`
}

// ToQuery converts ContentRequest to domain.ContentQuery, applying the
// endpoint defaults (createdAt descending, page 1, limit 10).
func (r *ContentRequest) ToQuery() domain.ContentQuery {
	q := domain.DefaultContentQuery()

	q.Type = domain.ContentType(r.Type)
	q.Author = r.Author
	q.Tags = splitCSV(r.Tags)
	q.DateFrom = r.DateFrom
	q.DateTo = r.DateTo

	if r.SortBy != "" {
		q.SortBy = domain.SortField(r.SortBy)
	}
	if r.SortOrder != "" {
		q.SortOrder = domain.SortOrder(r.SortOrder)
	}

	q.Pagination = parsePagination(r.Page, r.Limit)

	return q
}

// SearchRequest represents the query parameters for content search.
type SearchRequest struct {
	ContentRequest
	Query      string `query:"q"`
	Department string `query:"department"`
}

// ToQuery converts SearchRequest to domain.SearchQuery. The search endpoint
// defaults to relevance sorting regardless of whether a text query is given.
func (r *SearchRequest) ToQuery() domain.SearchQuery {
	q := domain.DefaultSearchQuery()

	q.Query = r.Query
	q.Department = r.Department
	q.Type = domain.ContentType(r.Type)
	q.Author = r.Author
	q.Tags = splitCSV(r.Tags)
	q.DateFrom = r.DateFrom
	q.DateTo = r.DateTo

	if r.SortBy != "" {
		q.SortBy = domain.SortField(r.SortBy)
	}
	if r.SortOrder != "" {
		q.SortOrder = domain.SortOrder(r.SortOrder)
	}

	q.Pagination = parsePagination(r.Page, r.Limit)

	return q
}

// UserRequest represents the query parameters for listing users.
type UserRequest struct {
	Department string `query:"department"`
	Search     string `query:"search"`
	SortBy     string `query:"sortBy"`
	SortOrder  string `query:"sortOrder"`
	Page       string `query:"page"`
	Limit      string `query:"limit"`
}

// ToQuery converts UserRequest to domain.UserQuery, applying the endpoint
// defaults (name ascending, page 1, limit 10).
func (r *UserRequest) ToQuery() domain.UserQuery {
	q := domain.DefaultUserQuery()

	q.Department = r.Department
	q.Search = r.Search

	if r.SortBy != "" {
		q.SortBy = domain.SortField(r.SortBy)
	}
	if r.SortOrder != "" {
		q.SortOrder = domain.SortOrder(r.SortOrder)
	}

	q.Pagination = parsePagination(r.Page, r.Limit)

	return q
}

// parsePagination resolves raw page/limit parameters. Empty or non-numeric
// values fall back to the defaults; numeric values are passed through as-is
// so out-of-range ones fail validation with the proper error.
func parsePagination(page, limit string) domain.Pagination {
	p := domain.DefaultPagination()

	if page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			p.Page = n
		}
	}
	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			p.Limit = n
		}
	}

	return p
}

// splitCSV splits a comma-separated parameter into trimmed non-empty values.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
