package employee

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/compensation"
	"hrdesk/internal/platform/apperr"
	"hrdesk/internal/platform/wireint"
	"hrdesk/internal/platform/wiretime"
)

const knownID = "6f1c2a8e-5b7d-4c3e-9a10-2b3c4d5e6f70"

type fakeStore struct {
	employees map[string]Employee
	created   []Employee
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: map[string]Employee{
		knownID: {
			ID:     knownID,
			Name:   "Asha",
			Salary: compensation.NewSalary(50000, 0),
			Bonus:  6000,
			IsOpen: true,
		},
	}}
}

func (f *fakeStore) Create(_ context.Context, e Employee) (Employee, error) {
	e.ID = "new-id"
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeStore) List(context.Context) ([]Employee, error) {
	out := make([]Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) ListActive(ctx context.Context) ([]Employee, error) {
	return f.List(ctx)
}

func (f *fakeStore) UpdateSalary(_ context.Context, id string, salary compensation.Salary) error {
	e, ok := f.employees[id]
	if !ok {
		return ErrEmployeeNotFound
	}
	e.Salary = salary
	f.employees[id] = e
	return nil
}

func joinedAt(ms int64) *wiretime.Nanos {
	n := wiretime.FromMillis(ms)
	return &n
}

func TestCreateDerivesSalary(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, 24)

	e, err := svc.Create(context.Background(), CreateInput{
		Name:        "  Ravi ",
		Email:       "ravi@example.com",
		JoiningDate: joinedAt(1704412800000),
		BaseSalary:  30000,
		Bonus:       1000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi", e.Name)
	assert.Equal(t, int64(24), e.LeaveBalance)
	assert.True(t, e.IsOpen)
	assert.Equal(t, compensation.Salary{Base: 30000, Bonus: 1000, PFDeduction: 3600, FinalPayable: 27400}, e.Salary)
	assert.Len(t, store.created, 1)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore(), 24)
	joined := joinedAt(1704412800000)

	cases := map[string]struct {
		in   CreateInput
		want error
	}{
		"blank name":      {CreateInput{Name: " ", JoiningDate: joined}, ErrNameRequired},
		"bad email":       {CreateInput{Name: "A", Email: "not-an-email", JoiningDate: joined}, ErrInvalidEmail},
		"no joining date": {CreateInput{Name: "A"}, ErrJoiningDate},
		"negative base":   {CreateInput{Name: "A", JoiningDate: joined, BaseSalary: -1}, compensation.ErrNegativeAmount},
		"base too large":  {CreateInput{Name: "A", JoiningDate: joined, BaseSalary: wireint.Int(compensation.MaxAmount + 1)}, compensation.ErrAmountTooLarge},
		"bonus too large": {CreateInput{Name: "A", JoiningDate: joined, Bonus: wireint.Int(math.MaxInt64)}, compensation.ErrAmountTooLarge},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestCreateAcceptsEpochJoiningDate(t *testing.T) {
	store := newFakeStore()
	e, err := NewService(store, 24).Create(context.Background(), CreateInput{Name: "Old Timer", JoiningDate: joinedAt(0)})
	require.NoError(t, err)
	assert.Equal(t, wiretime.Nanos(0), e.JoiningDate)
	assert.Len(t, store.created, 1)
}

func TestUpdateBaseSalaryRecomputes(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, 24)

	e, err := svc.UpdateBaseSalary(context.Background(), knownID, 60000)
	require.NoError(t, err)
	assert.Equal(t, int64(7200), e.Salary.PFDeduction)
	assert.Equal(t, int64(52800), e.Salary.FinalPayable)
	assert.Equal(t, e.Salary, store.employees[knownID].Salary)
}

func TestUpdateBaseSalaryRejectsNegative(t *testing.T) {
	_, err := NewService(newFakeStore(), 24).UpdateBaseSalary(context.Background(), knownID, -5)
	assert.ErrorIs(t, err, compensation.ErrNegativeAmount)
}

func TestUpdateBaseSalaryRejectsOverflow(t *testing.T) {
	store := newFakeStore()
	_, err := NewService(store, 24).UpdateBaseSalary(context.Background(), knownID, math.MaxInt64)
	assert.ErrorIs(t, err, compensation.ErrAmountTooLarge)
	assert.Equal(t, compensation.NewSalary(50000, 0), store.employees[knownID].Salary)
}

func TestGetMalformedIDIsNotFound(t *testing.T) {
	_, err := NewService(newFakeStore(), 24).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestBreakdownUsesTopLevelBonusFallback(t *testing.T) {
	b, err := NewService(newFakeStore(), 24).Breakdown(context.Background(), knownID)
	require.NoError(t, err)
	assert.Equal(t, compensation.Breakdown{
		Base:         50000,
		Bonus:        6000,
		PFDeduction:  6000,
		FinalPayable: 50000,
	}, b)
}
