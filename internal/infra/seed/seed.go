// Package seed loads the entity collections that back the store, from the
// embedded default data set, a local file, or a remote CMS export.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"intranet-portal/internal/domain"
	"intranet-portal/internal/validator"
)

//go:embed seed.json
var defaultSeed []byte

// File is the wire/file format of a seed data set.
type File struct {
	Users   []UserRecord    `json:"users" validate:"required,dive"`
	Content []ContentRecord `json:"content" validate:"required,dive"`
}

// UserRecord is a user entry in a seed data set.
type UserRecord struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department"`
	Avatar     string `json:"avatar"`
}

// ContentRecord is a content entry in a seed data set. AuthorID must
// reference one of the seed users.
type ContentRecord struct {
	ID        string   `json:"id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required"`
	AuthorID  string   `json:"authorId" validate:"required"`
	CreatedAt string   `json:"createdAt" validate:"required"`
	UpdatedAt string   `json:"updatedAt" validate:"required"`
	Tags      []string `json:"tags"`
	Type      string   `json:"type" validate:"required,oneof=announcement news policy event"`
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// Parse decodes and validates a seed data set and resolves author
// references, returning the domain collections in file order.
func Parse(data []byte, v *validator.Validator) ([]*domain.User, []*domain.ContentItem, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("decoding seed data: %w", err)
	}
	if err := v.Validate(&file); err != nil {
		return nil, nil, fmt.Errorf("validating seed data: %w", err)
	}

	users := make([]*domain.User, 0, len(file.Users))
	byID := make(map[string]*domain.User, len(file.Users))

	for _, rec := range file.Users {
		if _, dup := byID[rec.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate user id %q", rec.ID)
		}
		u := &domain.User{
			ID:         rec.ID,
			Name:       rec.Name,
			Email:      rec.Email,
			Department: rec.Department,
			Avatar:     rec.Avatar,
		}
		users = append(users, u)
		byID[rec.ID] = u
	}

	contents := make([]*domain.ContentItem, 0, len(file.Content))
	seen := make(map[string]struct{}, len(file.Content))

	for _, rec := range file.Content {
		if _, dup := seen[rec.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate content id %q", rec.ID)
		}
		seen[rec.ID] = struct{}{}

		author, ok := byID[rec.AuthorID]
		if !ok {
			return nil, nil, fmt.Errorf("content %q references unknown author %q", rec.ID, rec.AuthorID)
		}

		createdAt, err := parseTimestamp(rec.CreatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("content %q createdAt: %w", rec.ID, err)
		}
		updatedAt, err := parseTimestamp(rec.UpdatedAt)
		if err != nil {
			return nil, nil, fmt.Errorf("content %q updatedAt: %w", rec.ID, err)
		}

		contents = append(contents, &domain.ContentItem{
			ID:        rec.ID,
			Title:     rec.Title,
			Content:   rec.Content,
			Author:    author,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
			Tags:      rec.Tags,
			Type:      domain.ContentType(rec.Type),
		})
	}

	return users, contents, nil
}

// Load reads a seed data set from path, or the embedded default when path
// is empty.
func Load(path string, v *validator.Validator) ([]*domain.User, []*domain.ContentItem, error) {
	data := defaultSeed

	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading seed file: %w", err)
		}
	}

	return Parse(data, v)
}
