package domain

import (
	"strings"
	"testing"
	"time"
)

func testAuthor(name, dept string) *User {
	return &User{
		ID:         "u1",
		Name:       name,
		Email:      strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@company.com",
		Department: dept,
	}
}

func TestScore(t *testing.T) {
	author := testAuthor("John Doe", "Engineering")

	tests := []struct {
		name     string
		item     *ContentItem
		query    string
		expected int
	}{
		{
			name: "empty query scores 1",
			item: &ContentItem{
				Title:   "Anything",
				Content: "Anything at all",
				Author:  author,
			},
			query:    "",
			expected: 1,
		},
		{
			name: "title match",
			item: &ContentItem{
				Title:   "Q1 Company Meeting",
				Content: "Join us for the quarterly review",
				Author:  author,
			},
			query:    "company",
			expected: 10,
		},
		{
			name: "content match",
			item: &ContentItem{
				Title:   "Welcome",
				Content: "All hands meeting next week",
				Author:  author,
			},
			query:    "meeting",
			expected: 5,
		},
		{
			name: "single tag match",
			item: &ContentItem{
				Title:   "Welcome",
				Content: "Nothing relevant",
				Tags:    []string{"meeting"},
				Author:  author,
			},
			query:    "meeting",
			expected: 2,
		},
		{
			name: "two tag matches sum",
			item: &ContentItem{
				Title:   "Welcome",
				Content: "Nothing relevant",
				Tags:    []string{"team-meeting", "meeting-notes"},
				Author:  author,
			},
			query:    "meeting",
			expected: 4,
		},
		{
			name: "author name match",
			item: &ContentItem{
				Title:   "Welcome",
				Content: "Nothing relevant",
				Author:  author,
			},
			query:    "john",
			expected: 3,
		},
		{
			name: "all fields accumulate",
			item: &ContentItem{
				Title:   "Meeting agenda",
				Content: "The meeting starts at noon",
				Tags:    []string{"meeting"},
				Author:  testAuthor("Mary Meetingson", "HR"),
			},
			query:    "meeting",
			expected: 20, // 10 + 5 + 2 + 3
		},
		{
			name: "no match scores zero",
			item: &ContentItem{
				Title:   "Welcome",
				Content: "Nothing relevant",
				Tags:    []string{"platform"},
				Author:  author,
			},
			query:    "budget",
			expected: 0,
		},
		{
			name: "matching is case-insensitive",
			item: &ContentItem{
				Title:   "Q1 COMPANY MEETING",
				Content: "Nothing relevant",
				Author:  author,
			},
			query:    "Meeting",
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.item, tt.query)
			if got != tt.expected {
				t.Errorf("Score() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// Title matches must outrank content-only matches, which must outrank
// tag-only matches, for otherwise-identical items.
func TestScore_FieldPriority(t *testing.T) {
	author := testAuthor("Sam Ok", "Engineering")

	titleOnly := &ContentItem{Title: "Meeting", Content: "x", Author: author}
	contentOnly := &ContentItem{Title: "x", Content: "Meeting", Author: author}
	tagOnly := &ContentItem{Title: "x", Content: "y", Tags: []string{"meeting"}, Author: author}

	title := Score(titleOnly, "meeting")
	content := Score(contentOnly, "meeting")
	tag := Score(tagOnly, "meeting")

	if !(title > content && content > tag) {
		t.Errorf("expected title (%d) > content (%d) > tag (%d)", title, content, tag)
	}
}

func TestExtractHighlights(t *testing.T) {
	author := testAuthor("John Doe", "Engineering")

	t.Run("empty query yields nil", func(t *testing.T) {
		item := &ContentItem{Title: "Meeting", Content: "Meeting", Author: author}
		if h := ExtractHighlights(item, ""); h != nil {
			t.Errorf("expected nil highlights, got %+v", h)
		}
	})

	t.Run("no match yields nil", func(t *testing.T) {
		item := &ContentItem{Title: "Welcome", Content: "Nothing", Author: author}
		if h := ExtractHighlights(item, "budget"); h != nil {
			t.Errorf("expected nil highlights, got %+v", h)
		}
	})

	t.Run("title highlight is the full title", func(t *testing.T) {
		item := &ContentItem{Title: "Q1 Company Meeting", Content: "x", Author: author}
		h := ExtractHighlights(item, "meeting")
		if h == nil || len(h.Title) != 1 || h.Title[0] != "Q1 Company Meeting" {
			t.Errorf("unexpected title highlights: %+v", h)
		}
	})

	t.Run("content snippet windows the first match", func(t *testing.T) {
		prefix := strings.Repeat("a", 80)
		suffix := strings.Repeat("b", 80)
		item := &ContentItem{Title: "x", Content: prefix + "meeting" + suffix, Author: author}

		h := ExtractHighlights(item, "meeting")
		if h == nil || len(h.Content) != 1 {
			t.Fatalf("expected one content highlight, got %+v", h)
		}
		want := strings.Repeat("a", 50) + "meeting" + strings.Repeat("b", 50)
		if h.Content[0] != want {
			t.Errorf("snippet = %q, want %q", h.Content[0], want)
		}
	})

	t.Run("content snippet clamps at boundaries", func(t *testing.T) {
		item := &ContentItem{Title: "x", Content: "meeting now", Author: author}
		h := ExtractHighlights(item, "meeting")
		if h == nil || len(h.Content) != 1 || h.Content[0] != "meeting now" {
			t.Errorf("unexpected content highlights: %+v", h)
		}
	})

	t.Run("tag highlights keep original order", func(t *testing.T) {
		item := &ContentItem{
			Title:   "x",
			Content: "y",
			Tags:    []string{"meeting-notes", "platform", "team-meeting"},
			Author:  author,
		}
		h := ExtractHighlights(item, "meeting")
		if h == nil || len(h.Tags) != 2 {
			t.Fatalf("expected two tag highlights, got %+v", h)
		}
		if h.Tags[0] != "meeting-notes" || h.Tags[1] != "team-meeting" {
			t.Errorf("tag highlights out of order: %v", h.Tags)
		}
	})
}

func TestScoreContent(t *testing.T) {
	now := time.Now()
	author := testAuthor("Jane Smith", "HR")

	items := []*ContentItem{
		{ID: "1", Title: "Q1 Company Meeting", Content: "Join us", Tags: []string{"meeting", "quarterly"}, Author: author, CreatedAt: now},
		{ID: "2", Title: "Welcome", Content: "The meeting room is open", Author: author, CreatedAt: now},
		{ID: "3", Title: "Holiday Policy", Content: "Unrelated", Author: author, CreatedAt: now},
	}

	t.Run("non-empty query drops zero scores", func(t *testing.T) {
		results := ScoreContent(items, "meeting")
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		// 10 title + 2 tag = 12 for the first, 5 content-only for the second.
		if results[0].Score != 12 || results[1].Score != 5 {
			t.Errorf("scores = %d, %d, want 12, 5", results[0].Score, results[1].Score)
		}
		if results[0].Highlights == nil || results[1].Highlights == nil {
			t.Error("expected highlights on matched results")
		}
	})

	t.Run("empty query keeps everything at score 1", func(t *testing.T) {
		results := ScoreContent(items, "")
		if len(results) != len(items) {
			t.Fatalf("expected %d results, got %d", len(items), len(results))
		}
		for _, r := range results {
			if r.Score != 1 {
				t.Errorf("score = %d, want 1", r.Score)
			}
			if r.Highlights != nil {
				t.Errorf("expected no highlights, got %+v", r.Highlights)
			}
		}
	})
}
