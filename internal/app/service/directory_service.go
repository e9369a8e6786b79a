package service

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"intranet-portal/internal/domain"
)

// DirectoryService handles user listing and the tag/department aggregates.
type DirectoryService struct {
	store  domain.Store
	logger *zap.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(store domain.Store, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		store:  store,
		logger: logger,
	}
}

// Users returns a filtered, sorted, paginated page of users.
func (s *DirectoryService) Users(ctx context.Context, q domain.UserQuery) ([]*domain.User, domain.PageMeta, error) {
	if err := q.Pagination.Validate(); err != nil {
		return nil, domain.PageMeta{}, err
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	filtered := domain.FilterUsers(users, q.Filters())

	ordered := slices.Clone(filtered)
	domain.SortUsers(ordered, q.SortBy, q.SortOrder)

	page, meta := domain.Paginate(ordered, q.Pagination)

	return page, meta, nil
}

// Departments returns the department summaries, recomputed from the current
// snapshot on every call.
func (s *DirectoryService) Departments(ctx context.Context) ([]domain.DepartmentInfo, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.store.Contents(ctx)
	if err != nil {
		return nil, err
	}

	return domain.AggregateDepartments(users, items), nil
}

// Tags returns the tag usage summaries, recomputed from the current snapshot
// on every call.
func (s *DirectoryService) Tags(ctx context.Context) ([]domain.TagInfo, error) {
	items, err := s.store.Contents(ctx)
	if err != nil {
		return nil, err
	}

	return domain.AggregateTags(items), nil
}

// Stats holds collection counts for the dashboard page.
type Stats struct {
	Contents    int
	Users       int
	Departments int
	Tags        int
}

// Stats returns collection counts from the current snapshot.
func (s *DirectoryService) Stats(ctx context.Context) (Stats, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return Stats{}, err
	}
	items, err := s.store.Contents(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Contents:    len(items),
		Users:       len(users),
		Departments: len(domain.AggregateDepartments(users, items)),
		Tags:        len(domain.AggregateTags(items)),
	}, nil
}
