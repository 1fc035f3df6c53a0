package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/platform/apperr"
	"hrdesk/internal/platform/wiretime"
)

const (
	taskID = "2d3e4f5a-6b7c-4d8e-9f0a-1b2c3d4e5f6a"
	empA   = "5f0c2a4e-8d7b-4c1e-9a3f-2b6d8e1f0a11"
	empB   = "7a1d3b5c-9e2f-4a6b-8c0d-1e3f5a7b9c22"
)

type fakeStore struct {
	tasks map[string]Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: map[string]Task{}}
}

func (f *fakeStore) Create(_ context.Context, t Task) (Task, error) {
	t.ID = taskID
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeStore) Update(_ context.Context, t Task) (Task, error) {
	if _, ok := f.tasks[t.ID]; !ok {
		return Task{}, ErrTaskNotFound
	}
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeStore) List(context.Context) ([]Task, error) {
	out := []Task{}
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeStore) ListByEmployee(_ context.Context, employeeID string) ([]Task, error) {
	out := []Task{}
	for _, t := range f.tasks {
		for _, id := range t.AssignedTo {
			if id == employeeID {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func due(t *testing.T) *wiretime.Nanos {
	t.Helper()
	n, err := wiretime.FromDate("2024-03-15")
	require.NoError(t, err)
	return &n
}

func TestCreateNormalizesAssignees(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.Create(context.Background(), Input{
		Title:      "  Quarterly review ",
		DueDate:    due(t),
		Priority:   PriorityHigh,
		AssignedTo: []string{empB, empA, " " + empB},
	})
	require.NoError(t, err)
	assert.Equal(t, "Quarterly review", created.Title)
	assert.Equal(t, []string{empA, empB}, created.AssignedTo)
	assert.Equal(t, *due(t), created.DueDate)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore())

	cases := map[string]struct {
		in   Input
		want error
	}{
		"blank title":      {Input{Title: " ", DueDate: due(t), Priority: PriorityLow}, ErrTitleRequired},
		"missing due date": {Input{Title: "x", Priority: PriorityLow}, ErrDueDateRequired},
		"bad priority":     {Input{Title: "x", DueDate: due(t), Priority: "urgent"}, ErrInvalidPriority},
		"bad assignee":     {Input{Title: "x", DueDate: due(t), Priority: PriorityLow, AssignedTo: []string{"e-1"}}, ErrEmployeeNotFound},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEpochDueDateIsAccepted(t *testing.T) {
	epoch := wiretime.Nanos(0)
	_, err := NewService(newFakeStore()).Create(context.Background(), Input{Title: "x", DueDate: &epoch, Priority: PriorityLow})
	assert.NoError(t, err)
}

func TestUpdateAndMyTasks(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Title: "Onboard", DueDate: due(t), Priority: PriorityMedium, AssignedTo: []string{empA}})
	require.NoError(t, err)

	mine, err := svc.ListForEmployee(ctx, empB)
	require.NoError(t, err)
	assert.Empty(t, mine)

	updated, err := svc.Update(ctx, taskID, Input{Title: "Onboard", DueDate: due(t), Priority: PriorityMedium, AssignedTo: []string{empB}, IsComplete: true})
	require.NoError(t, err)
	assert.True(t, updated.IsComplete)

	mine, err = svc.ListForEmployee(ctx, empB)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, taskID, mine[0].ID)

	mine, err = svc.ListForEmployee(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestMissingTasksAreNotFound(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	_, err := svc.Update(ctx, "nope", Input{Title: "x", DueDate: due(t), Priority: PriorityLow})
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, taskID), ErrTaskNotFound)
	_, err = svc.Get(ctx, "nope")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
