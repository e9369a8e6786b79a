// Package domain contains the core business logic and entities.
package domain

// Relevance scoring weights. A title match outranks a content-only match,
// which outranks a tag-only match.
const (
	titleWeight   = 10
	contentWeight = 5
	tagWeight     = 2
	authorWeight  = 3

	// snippetRadius is the number of bytes of context kept on each side of
	// the first content match when extracting a highlight.
	snippetRadius = 50
)

// SearchResult pairs a content item with its relevance score and the
// highlight snippets that produced it. Derived per request, never stored.
type SearchResult struct {
	Item       *ContentItem `json:"item"`
	Score      int          `json:"score"`
	Highlights *Highlights  `json:"highlights,omitempty"`
}

// Highlights holds the matched snippets per field. The struct is omitted
// from results entirely when no field matched.
type Highlights struct {
	Title   []string `json:"title,omitempty"`
	Content []string `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Score computes the relevance score of an item against a free-text query.
//
// An empty query scores every item 1 so that an unscored listing still sorts
// deterministically. Otherwise the score accumulates, case-insensitively:
//
//	+10 if the query appears in the title
//	+5  if it appears in the content body
//	+2  per tag containing the query
//	+3  if it appears in the author's name
func Score(item *ContentItem, query string) int {
	if query == "" {
		return 1
	}

	score := 0

	if containsFold(item.Title, query) {
		score += titleWeight
	}
	if containsFold(item.Content, query) {
		score += contentWeight
	}
	for _, tag := range item.Tags {
		if containsFold(tag, query) {
			score += tagWeight
		}
	}
	if item.Author != nil && containsFold(item.Author.Name, query) {
		score += authorWeight
	}

	return score
}

// ExtractHighlights returns the highlight snippets for each field of the
// item that matched the query, or nil when the query is empty or nothing
// matched.
func ExtractHighlights(item *ContentItem, query string) *Highlights {
	if query == "" {
		return nil
	}

	h := &Highlights{}

	if containsFold(item.Title, query) {
		h.Title = []string{item.Title}
	}

	if idx := indexFold(item.Content, query); idx >= 0 {
		start := idx - snippetRadius
		if start < 0 {
			start = 0
		}
		end := idx + len(query) + snippetRadius
		if end > len(item.Content) {
			end = len(item.Content)
		}
		h.Content = []string{item.Content[start:end]}
	}

	for _, tag := range item.Tags {
		if containsFold(tag, query) {
			h.Tags = append(h.Tags, tag)
		}
	}

	if h.Title == nil && h.Content == nil && h.Tags == nil {
		return nil
	}
	return h
}

// ScoreContent scores and annotates the filtered candidate set. When the
// query is non-empty, items that scored 0 are excluded: a text query narrows
// to matches only, while an empty query returns everything.
func ScoreContent(items []*ContentItem, query string) []SearchResult {
	results := make([]SearchResult, 0, len(items))

	for _, item := range items {
		score := Score(item, query)
		if query != "" && score == 0 {
			continue
		}
		results = append(results, SearchResult{
			Item:       item,
			Score:      score,
			Highlights: ExtractHighlights(item, query),
		})
	}

	return results
}
