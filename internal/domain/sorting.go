package domain

import "sort"

// Sorting uses sort.SliceStable throughout: items that compare equal keep
// their original relative order, in both directions. No secondary sort key
// is ever introduced.

// orderSign returns the multiplier applied to a comparison for the given
// direction.
func orderSign(order SortOrder) int {
	if order == SortOrderDesc {
		return -1
	}
	return 1
}

// SortContent orders items in place by the given key and direction.
// Unknown keys fall back to createdAt, the endpoint default.
func SortContent(items []*ContentItem, sortBy SortField, order SortOrder) {
	sign := orderSign(order)

	sort.SliceStable(items, func(i, j int) bool {
		return sign*compareContent(items[i], items[j], sortBy) < 0
	})
}

func compareContent(a, b *ContentItem, sortBy SortField) int {
	switch sortBy {
	case SortFieldUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case SortFieldTitle:
		return compareFold(a.Title, b.Title)
	default: // createdAt
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

// SortResults orders search results in place by the given key and direction.
// Unknown keys fall back to relevance, the endpoint default.
func SortResults(results []SearchResult, sortBy SortField, order SortOrder) {
	sign := orderSign(order)

	sort.SliceStable(results, func(i, j int) bool {
		return sign*compareResults(results[i], results[j], sortBy) < 0
	})
}

func compareResults(a, b SearchResult, sortBy SortField) int {
	switch sortBy {
	case SortFieldCreatedAt:
		return a.Item.CreatedAt.Compare(b.Item.CreatedAt)
	case SortFieldUpdatedAt:
		return a.Item.UpdatedAt.Compare(b.Item.UpdatedAt)
	case SortFieldTitle:
		return compareFold(a.Item.Title, b.Item.Title)
	default: // relevance
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	}
}

// SortUsers orders users in place by the given key and direction.
// Unknown keys fall back to name, the endpoint default. A missing department
// sorts as the empty string.
func SortUsers(users []*User, sortBy SortField, order SortOrder) {
	sign := orderSign(order)

	sort.SliceStable(users, func(i, j int) bool {
		return sign*compareUsers(users[i], users[j], sortBy) < 0
	})
}

func compareUsers(a, b *User, sortBy SortField) int {
	switch sortBy {
	case SortFieldEmail:
		return compareFold(a.Email, b.Email)
	case SortFieldDepartment:
		return compareFold(a.Department, b.Department)
	default: // name
		return compareFold(a.Name, b.Name)
	}
}
