package app

import (
	"context"

	"employee_console_service/internal/employee/domain"

	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository Mock EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

// Create moke create employee
func (m *MockEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

// FindByID moke find employee by id
func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

// List moke list employees
func (m *MockEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

// Update moke partial update employee
func (m *MockEmployeeRepository) Update(ctx context.Context, id string, patch domain.EmployeeUpdate) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

// Delete moke delete employee
func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
