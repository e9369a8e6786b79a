package domain

import "sort"

// TagCategory classifies a tag for display grouping.
type TagCategory string

const (
	TagCategoryGeneral    TagCategory = "general"
	TagCategoryDepartment TagCategory = "department"
	TagCategoryEvent      TagCategory = "event"
	TagCategoryPolicy     TagCategory = "policy"
)

// TagInfo is a derived tag usage summary, recomputed per request.
type TagInfo struct {
	Name     string      `json:"name"`
	Count    int         `json:"count"`
	Category TagCategory `json:"category,omitempty"`
}

// DepartmentInfo is a derived department summary, recomputed per request.
type DepartmentInfo struct {
	Name         string `json:"name"`
	UserCount    int    `json:"userCount"`
	ContentCount int    `json:"contentCount"`
}

// tagCategoryRules is the ordered rule list for tag categorization.
// The first rule whose name list contains the tag (ignoring case) wins;
// tags matching no rule are general.
var tagCategoryRules = []struct {
	names    []string
	category TagCategory
}{
	{[]string{"policy", "guidelines", "mandatory"}, TagCategoryPolicy},
	{[]string{"meeting", "event", "training", "celebration"}, TagCategoryEvent},
	{[]string{"engineering", "hr", "marketing", "finance", "operations", "design", "legal", "sales"}, TagCategoryDepartment},
}

// CategorizeTag returns the category for a tag name.
func CategorizeTag(name string) TagCategory {
	for _, rule := range tagCategoryRules {
		for _, candidate := range rule.names {
			if compareFold(name, candidate) == 0 {
				return rule.category
			}
		}
	}
	return TagCategoryGeneral
}

// AggregateTags counts tag occurrences across all content items and assigns
// categories. The grouping key is the exact tag string; ties in the
// count-descending sort keep first-seen order from iterating content in
// original order.
func AggregateTags(items []*ContentItem) []TagInfo {
	counts := make(map[string]int)
	var order []string

	for _, item := range items {
		for _, tag := range item.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]TagInfo, 0, len(order))
	for _, name := range order {
		tags = append(tags, TagInfo{
			Name:     name,
			Count:    counts[name],
			Category: CategorizeTag(name),
		})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})

	return tags
}

// AggregateDepartments summarizes the distinct non-empty departments found
// on users, counting members and authored content by exact department match.
// Results sort by user count descending with stable ties in first-appearance
// order.
func AggregateDepartments(users []*User, items []*ContentItem) []DepartmentInfo {
	userCounts := make(map[string]int)
	var order []string

	for _, u := range users {
		if u.Department == "" {
			continue
		}
		if _, seen := userCounts[u.Department]; !seen {
			order = append(order, u.Department)
		}
		userCounts[u.Department]++
	}

	contentCounts := make(map[string]int)
	for _, item := range items {
		if dept := item.AuthorDepartment(); dept != "" {
			contentCounts[dept]++
		}
	}

	departments := make([]DepartmentInfo, 0, len(order))
	for _, name := range order {
		departments = append(departments, DepartmentInfo{
			Name:         name,
			UserCount:    userCounts[name],
			ContentCount: contentCounts[name],
		})
	}

	sort.SliceStable(departments, func(i, j int) bool {
		return departments[i].UserCount > departments[j].UserCount
	})

	return departments
}
