package domain

import (
	"testing"
)

func TestCategorizeTag(t *testing.T) {
	tests := []struct {
		tag      string
		expected TagCategory
	}{
		{"policy", TagCategoryPolicy},
		{"guidelines", TagCategoryPolicy},
		{"mandatory", TagCategoryPolicy},
		{"meeting", TagCategoryEvent},
		{"training", TagCategoryEvent},
		{"engineering", TagCategoryDepartment},
		{"HR", TagCategoryDepartment},
		{"Marketing", TagCategoryDepartment},
		{"announcement", TagCategoryGeneral},
		{"platform", TagCategoryGeneral},
		{"quarterly", TagCategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := CategorizeTag(tt.tag); got != tt.expected {
				t.Errorf("CategorizeTag(%q) = %q, want %q", tt.tag, got, tt.expected)
			}
		})
	}
}

func TestAggregateTags(t *testing.T) {
	items := []*ContentItem{
		{ID: "1", Tags: []string{"announcement", "platform"}},
		{ID: "2", Tags: []string{"meeting", "quarterly"}},
	}

	tags := AggregateTags(items)

	if len(tags) != 4 {
		t.Fatalf("expected 4 tag entries, got %d", len(tags))
	}

	// All counts equal, so first-seen order is preserved by the stable sort.
	wantNames := []string{"announcement", "platform", "meeting", "quarterly"}
	wantCategories := []TagCategory{TagCategoryGeneral, TagCategoryGeneral, TagCategoryEvent, TagCategoryGeneral}

	for i, tag := range tags {
		if tag.Name != wantNames[i] {
			t.Errorf("tags[%d].Name = %q, want %q", i, tag.Name, wantNames[i])
		}
		if tag.Count != 1 {
			t.Errorf("tags[%d].Count = %d, want 1", i, tag.Count)
		}
		if tag.Category != wantCategories[i] {
			t.Errorf("tags[%d].Category = %q, want %q", i, tag.Category, wantCategories[i])
		}
	}
}

func TestAggregateTags_CountsAndOrder(t *testing.T) {
	items := []*ContentItem{
		{ID: "1", Tags: []string{"platform", "policy"}},
		{ID: "2", Tags: []string{"policy", "meeting"}},
		{ID: "3", Tags: []string{"policy", "platform"}},
	}

	tags := AggregateTags(items)

	if tags[0].Name != "policy" || tags[0].Count != 3 {
		t.Errorf("expected policy first with count 3, got %+v", tags[0])
	}
	if tags[1].Name != "platform" || tags[1].Count != 2 {
		t.Errorf("expected platform second with count 2, got %+v", tags[1])
	}

	// Invariant: counts sum to total tag occurrences.
	sum := 0
	for _, tag := range tags {
		sum += tag.Count
	}
	if sum != 6 {
		t.Errorf("tag count sum = %d, want 6", sum)
	}
}

// The grouping key is the exact tag string; categorization folds case.
func TestAggregateTags_CaseSensitiveGrouping(t *testing.T) {
	items := []*ContentItem{
		{ID: "1", Tags: []string{"Engineering"}},
		{ID: "2", Tags: []string{"engineering"}},
	}

	tags := AggregateTags(items)

	if len(tags) != 2 {
		t.Fatalf("expected 2 distinct tags, got %d", len(tags))
	}
	for _, tag := range tags {
		if tag.Category != TagCategoryDepartment {
			t.Errorf("tag %q category = %q, want department", tag.Name, tag.Category)
		}
	}
}

func TestAggregateDepartments(t *testing.T) {
	eng := &User{ID: "1", Name: "John", Email: "j@c.com", Department: "Engineering"}
	eng2 := &User{ID: "2", Name: "Ann", Email: "a@c.com", Department: "Engineering"}
	hr := &User{ID: "3", Name: "Jane", Email: "jn@c.com", Department: "HR"}
	none := &User{ID: "4", Name: "Pat", Email: "p@c.com"}

	users := []*User{eng, hr, eng2, none}
	items := []*ContentItem{
		{ID: "c1", Author: eng},
		{ID: "c2", Author: hr},
		{ID: "c3", Author: none},
	}

	departments := AggregateDepartments(users, items)

	if len(departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(departments))
	}
	if departments[0].Name != "Engineering" || departments[0].UserCount != 2 || departments[0].ContentCount != 1 {
		t.Errorf("unexpected first department: %+v", departments[0])
	}
	if departments[1].Name != "HR" || departments[1].UserCount != 1 || departments[1].ContentCount != 1 {
		t.Errorf("unexpected second department: %+v", departments[1])
	}

	// Invariant: user counts sum to the number of users with a department.
	sum := 0
	for _, d := range departments {
		sum += d.UserCount
	}
	if sum != 3 {
		t.Errorf("user count sum = %d, want 3", sum)
	}
}

func TestAggregateDepartments_TieOrder(t *testing.T) {
	users := []*User{
		{ID: "1", Name: "A", Email: "a@c.com", Department: "Marketing"},
		{ID: "2", Name: "B", Email: "b@c.com", Department: "Finance"},
	}

	departments := AggregateDepartments(users, nil)

	// Equal user counts keep first-appearance order.
	if departments[0].Name != "Marketing" || departments[1].Name != "Finance" {
		t.Errorf("tie order not preserved: %+v", departments)
	}
}
