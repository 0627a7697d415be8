package repository

import (
	"context"

	"employee_console_service/internal/employee/domain"
	"employee_console_service/pkg/database"
	errprocess "employee_console_service/pkg/err"
)

// employees section: employee id -> record
const employeeSection = "employees"

// EmployeeRepository definition employee directory storage
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	// Update 部分更新，在 store 的寫鎖內套用 patch
	Update(ctx context.Context, id string, patch domain.EmployeeUpdate) error
	Delete(ctx context.Context, id string) error
}

type docEmployeeRepository struct {
	store *database.DocStore
}

// NewDocEmployeeRepository create an EmployeeRepository backed by the flat file document store
func NewDocEmployeeRepository(store *database.DocStore) EmployeeRepository {
	return &docEmployeeRepository{store: store}
}

func (r *docEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	err := database.UpdateSection(r.store, employeeSection, func(employees map[string]domain.Employee) (map[string]domain.Employee, error) {
		if employees == nil {
			employees = make(map[string]domain.Employee)
		}
		employees[emp.ID] = *emp
		return employees, nil
	})
	if err != nil {
		return errprocess.Storage(err)
	}
	return nil
}

func (r *docEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	employees, err := database.ViewSection[map[string]domain.Employee](r.store, employeeSection)
	if err != nil {
		return nil, errprocess.Storage(err)
	}

	emp, ok := employees[id]
	if !ok {
		return nil, errprocess.NotFound("employee " + id)
	}
	return &emp, nil
}

func (r *docEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := database.ViewSection[map[string]domain.Employee](r.store, employeeSection)
	if err != nil {
		return nil, errprocess.Storage(err)
	}

	out := make([]domain.Employee, 0, len(employees))
	for _, emp := range employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *docEmployeeRepository) Update(ctx context.Context, id string, patch domain.EmployeeUpdate) error {
	return database.UpdateSection(r.store, employeeSection, func(employees map[string]domain.Employee) (map[string]domain.Employee, error) {
		emp, ok := employees[id]
		if !ok {
			return nil, errprocess.NotFound("employee " + id)
		}

		if patch.Name != nil {
			emp.Name = *patch.Name
		}
		if patch.Email != nil {
			emp.Email = *patch.Email
		}
		if patch.Phone != nil {
			emp.Phone = *patch.Phone
		}
		if patch.Address != nil {
			emp.Address = *patch.Address
		}
		if patch.Role != nil {
			emp.Role = *patch.Role
		}
		if patch.Status != nil {
			emp.Status = *patch.Status
		}

		employees[id] = emp
		return employees, nil
	})
}

func (r *docEmployeeRepository) Delete(ctx context.Context, id string) error {
	return database.UpdateSection(r.store, employeeSection, func(employees map[string]domain.Employee) (map[string]domain.Employee, error) {
		if _, ok := employees[id]; !ok {
			return nil, errprocess.NotFound("employee " + id)
		}
		delete(employees, id)
		return employees, nil
	})
}
