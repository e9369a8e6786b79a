package domain

import "time"

// ContentFilter is a pure predicate over a content item. Active filters
// compose by logical AND.
type ContentFilter func(*ContentItem) bool

// UserFilter is a pure predicate over a user.
type UserFilter func(*User) bool

// dateLayouts are the accepted formats for dateFrom/dateTo values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// parseDate parses a date filter value. The bool result is false when the
// value does not parse; callers skip the bound in that case rather than
// failing the request.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TypeFilter accepts items with exactly the given content type.
func TypeFilter(t ContentType) ContentFilter {
	return func(item *ContentItem) bool {
		return item.Type == t
	}
}

// AuthorFilter accepts items whose author name or email contains the query
// as a case-insensitive substring.
func AuthorFilter(author string) ContentFilter {
	return func(item *ContentItem) bool {
		if item.Author == nil {
			return false
		}
		return containsFold(item.Author.Name, author) || containsFold(item.Author.Email, author)
	}
}

// DepartmentFilter accepts items whose author department equals the given
// value, ignoring case. An item without a department never matches.
func DepartmentFilter(department string) ContentFilter {
	return func(item *ContentItem) bool {
		dept := item.AuthorDepartment()
		if dept == "" {
			return false
		}
		return compareFold(dept, department) == 0
	}
}

// TagsFilter accepts items where any item tag contains any query tag as a
// case-insensitive substring.
func TagsFilter(tags []string) ContentFilter {
	return func(item *ContentItem) bool {
		for _, queryTag := range tags {
			for _, itemTag := range item.Tags {
				if containsFold(itemTag, queryTag) {
					return true
				}
			}
		}
		return false
	}
}

// DateFromFilter accepts items created at or after from.
func DateFromFilter(from time.Time) ContentFilter {
	return func(item *ContentItem) bool {
		return !item.CreatedAt.Before(from)
	}
}

// DateToFilter accepts items created at or before to.
func DateToFilter(to time.Time) ContentFilter {
	return func(item *ContentItem) bool {
		return !item.CreatedAt.After(to)
	}
}

// Filters builds the active filter set for the query. Unset fields produce
// no filter; malformed date bounds are silently skipped.
func (q ContentQuery) Filters() []ContentFilter {
	var filters []ContentFilter

	if q.Type != "" {
		filters = append(filters, TypeFilter(q.Type))
	}
	if q.Author != "" {
		filters = append(filters, AuthorFilter(q.Author))
	}
	if len(q.Tags) > 0 {
		filters = append(filters, TagsFilter(q.Tags))
	}
	if q.DateFrom != "" {
		if from, ok := parseDate(q.DateFrom); ok {
			filters = append(filters, DateFromFilter(from))
		}
	}
	if q.DateTo != "" {
		if to, ok := parseDate(q.DateTo); ok {
			filters = append(filters, DateToFilter(to))
		}
	}

	return filters
}

// Filters builds the active filter set for the search query. The free-text
// query is not a filter; it is handled by the scorer.
func (q SearchQuery) Filters() []ContentFilter {
	filters := q.ContentQuery.Filters()
	if q.Department != "" {
		filters = append(filters, DepartmentFilter(q.Department))
	}
	return filters
}

// FilterContent returns the items accepted by every filter.
func FilterContent(items []*ContentItem, filters []ContentFilter) []*ContentItem {
	if len(filters) == 0 {
		return items
	}

	result := make([]*ContentItem, 0, len(items))
	for _, item := range items {
		if matchesAllContent(item, filters) {
			result = append(result, item)
		}
	}
	return result
}

func matchesAllContent(item *ContentItem, filters []ContentFilter) bool {
	for _, f := range filters {
		if !f(item) {
			return false
		}
	}
	return true
}

// UserDepartmentFilter accepts users in the given department, ignoring case.
// A user without a department never matches.
func UserDepartmentFilter(department string) UserFilter {
	return func(u *User) bool {
		if u.Department == "" {
			return false
		}
		return compareFold(u.Department, department) == 0
	}
}

// UserSearchFilter accepts users whose name or email contains the term as a
// case-insensitive substring.
func UserSearchFilter(term string) UserFilter {
	return func(u *User) bool {
		return containsFold(u.Name, term) || containsFold(u.Email, term)
	}
}

// Filters builds the active filter set for the user query.
func (q UserQuery) Filters() []UserFilter {
	var filters []UserFilter

	if q.Department != "" {
		filters = append(filters, UserDepartmentFilter(q.Department))
	}
	if q.Search != "" {
		filters = append(filters, UserSearchFilter(q.Search))
	}

	return filters
}

// FilterUsers returns the users accepted by every filter.
func FilterUsers(users []*User, filters []UserFilter) []*User {
	if len(filters) == 0 {
		return users
	}

	result := make([]*User, 0, len(users))
	for _, u := range users {
		ok := true
		for _, f := range filters {
			if !f(u) {
				ok = false
				break
			}
		}
		if ok {
			result = append(result, u)
		}
	}
	return result
}
