package service_test

import (
	"context"
	"time"

	"github.com/spec-kit/employee-admin/internal/domain"
)

type stubEmployeeRepo struct {
	listFn   func(ctx context.Context) ([]domain.Employee, error)
	getFn    func(ctx context.Context, id int64) (*domain.Employee, error)
	createFn func(ctx context.Context, e domain.NewEmployee) (int64, error)
	updateFn func(ctx context.Context, id int64, p domain.EmployeePatch) (int64, error)
	deleteFn func(ctx context.Context, id int64) (int64, error)
	countFn  func(ctx context.Context) (int64, error)
	searchFn func(ctx context.Context, q string) ([]domain.Employee, error)
}

func (s stubEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	if s.listFn == nil {
		return []domain.Employee{}, nil
	}
	return s.listFn(ctx)
}

func (s stubEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(ctx, id)
}

func (s stubEmployeeRepo) Create(ctx context.Context, e domain.NewEmployee) (int64, error) {
	if s.createFn == nil {
		return 0, nil
	}
	return s.createFn(ctx, e)
}

func (s stubEmployeeRepo) Update(ctx context.Context, id int64, p domain.EmployeePatch) (int64, error) {
	if s.updateFn == nil {
		return 0, nil
	}
	return s.updateFn(ctx, id, p)
}

func (s stubEmployeeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	if s.deleteFn == nil {
		return 0, nil
	}
	return s.deleteFn(ctx, id)
}

func (s stubEmployeeRepo) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, nil
	}
	return s.countFn(ctx)
}

func (s stubEmployeeRepo) Search(ctx context.Context, q string) ([]domain.Employee, error) {
	if s.searchFn == nil {
		return []domain.Employee{}, nil
	}
	return s.searchFn(ctx, q)
}

type countOnly int64

func (c countOnly) Count(context.Context) (int64, error) { return int64(c), nil }

type stubDepartmentRepo struct {
	countOnly
	depts []domain.Department
}

func (s stubDepartmentRepo) Create(_ context.Context, name string) (*domain.Department, error) {
	return &domain.Department{ID: 1, Name: name}, nil
}

func (s stubDepartmentRepo) GetByID(context.Context, int64) (*domain.Department, error) {
	return nil, nil
}

func (s stubDepartmentRepo) List(context.Context) ([]domain.Department, error) {
	return s.depts, nil
}

type stubUserRepo struct {
	countOnly
	byEmail map[string]*domain.User
	created []*domain.User
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = int64(len(s.created) + 1)
	s.created = append(s.created, user)
	if s.byEmail == nil {
		s.byEmail = map[string]*domain.User{}
	}
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return s.byEmail[email], nil
}

type stubRevocations map[string]time.Duration

func (s stubRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	s[tokenID] = ttl
	return nil
}

func (s stubRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := s[tokenID]
	return ok, nil
}

func strPtr(s string) *string { return &s }
