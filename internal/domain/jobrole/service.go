package jobrole

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hrdesk/internal/platform/cache"
)

const openRolesKey = "jobroles:open"

type Service struct {
	Store StoreAPI
	Cache *cache.Cache
}

func NewService(store StoreAPI, c *cache.Cache) *Service {
	return &Service{Store: store, Cache: c}
}

// Create publishes a new open posting.
func (s *Service) Create(ctx context.Context, in CreateInput) (JobRole, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return JobRole{}, ErrTitleRequired
	}
	created, err := s.Store.Create(ctx, JobRole{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Location: Location{
			Country: strings.TrimSpace(in.Location.Country),
			City:    strings.TrimSpace(in.Location.City),
		},
		LinkedInURL: strings.TrimSpace(in.LinkedInURL),
		IsOpen:      true,
	})
	if err != nil {
		return JobRole{}, err
	}
	s.invalidate()
	return created, nil
}

func (s *Service) ListOpen(ctx context.Context) ([]JobRole, error) {
	return cache.Load(ctx, s.Cache, openRolesKey, s.Store.ListOpen)
}

func (s *Service) CountOpen(ctx context.Context) (OpenCount, error) {
	open, err := s.ListOpen(ctx)
	if err != nil {
		return OpenCount{}, err
	}
	return OpenCount{Open: int64(len(open))}, nil
}

func (s *Service) Close(ctx context.Context, id string) (JobRole, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobRole{}, ErrJobRoleNotFound
	}
	closed, err := s.Store.Close(ctx, id)
	if err != nil {
		return JobRole{}, err
	}
	s.invalidate()
	return closed, nil
}

func (s *Service) invalidate() {
	if s.Cache != nil {
		s.Cache.Invalidate(openRolesKey)
	}
}
