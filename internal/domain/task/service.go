package task

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

// normalize validates in and returns the task it describes. Assignees are
// deduplicated and sorted so stored sets compare equal.
func normalize(in Input) (Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Task{}, ErrTitleRequired
	}
	if in.DueDate == nil {
		return Task{}, ErrDueDateRequired
	}
	if !in.Priority.Valid() {
		return Task{}, ErrInvalidPriority
	}
	assignees := make([]string, 0, len(in.AssignedTo))
	for _, id := range in.AssignedTo {
		id = strings.TrimSpace(id)
		if _, err := uuid.Parse(id); err != nil {
			return Task{}, ErrEmployeeNotFound
		}
		assignees = append(assignees, id)
	}
	slices.Sort(assignees)
	return Task{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		DueDate:     *in.DueDate,
		Priority:    in.Priority,
		AssignedTo:  slices.Compact(assignees),
		IsComplete:  in.IsComplete,
	}, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Task, error) {
	t, err := normalize(in)
	if err != nil {
		return Task{}, err
	}
	return s.Store.Create(ctx, t)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Task, error) {
	if !validID(id) {
		return Task{}, ErrTaskNotFound
	}
	t, err := normalize(in)
	if err != nil {
		return Task{}, err
	}
	t.ID = id
	return s.Store.Update(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrTaskNotFound
	}
	return s.Store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id string) (Task, error) {
	if !validID(id) {
		return Task{}, ErrTaskNotFound
	}
	return s.Store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Task, error) {
	return s.Store.List(ctx)
}

func (s *Service) ListForEmployee(ctx context.Context, employeeID string) ([]Task, error) {
	if !validID(employeeID) {
		return []Task{}, nil
	}
	return s.Store.ListByEmployee(ctx, employeeID)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
