// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"time"
)

// ContentType represents the type of content.
type ContentType string

const (
	ContentTypeAnnouncement ContentType = "announcement"
	ContentTypeNews         ContentType = "news"
	ContentTypePolicy       ContentType = "policy"
	ContentTypeEvent        ContentType = "event"
)

// Valid returns true if the content type is one of the known types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeAnnouncement, ContentTypeNews, ContentTypePolicy, ContentTypeEvent:
		return true
	default:
		return false
	}
}

// User represents a portal user. Users are loaded once at startup and never
// mutated; content items share references to the canonical copies.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
}

// ContentItem represents a single piece of portal content.
// Items are immutable once loaded into the store.
type ContentItem struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Author    *User       `json:"author"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Tags      []string    `json:"tags"`
	Type      ContentType `json:"type"`
}

// AuthorDepartment returns the author's department, or "" when the item has
// no author or the author has no department.
func (c *ContentItem) AuthorDepartment() string {
	if c.Author == nil {
		return ""
	}
	return c.Author.Department
}
