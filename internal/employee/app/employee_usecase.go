package app

import (
	"context"
	"time"

	"employee_console_service/internal/employee/domain"
	"employee_console_service/internal/employee/repository"
	errprocess "employee_console_service/pkg/err"

	"github.com/google/uuid"
)

// CreateEmployeeInput create employee payload
type CreateEmployeeInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Role    string
	Status  string
}

// UpdateEmployeeInput partial update payload，nil 欄位不變
type UpdateEmployeeInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Role    *string
	Status  *string
}

// DirectoryUseCase 這裡封裝了員工目錄對外提供的應用服務
type DirectoryUseCase interface {
	Create(ctx context.Context, input CreateEmployeeInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id string, input UpdateEmployeeInput) error
	Delete(ctx context.Context, id string) error
}

type directoryUseCase struct {
	employeeRepo repository.EmployeeRepository
}

// NewDirectoryUseCase 建立一個新的 DirectoryUseCase
func NewDirectoryUseCase(employeeRepo repository.EmployeeRepository) DirectoryUseCase {
	return &directoryUseCase{employeeRepo: employeeRepo}
}

// Create 驗證必填欄位與狀態後建立員工，id 由 server 分配
func (uc *directoryUseCase) Create(ctx context.Context, input CreateEmployeeInput) (string, error) {
	if input.Name == "" || input.Email == "" || input.Role == "" || input.Status == "" {
		return "", errprocess.Validation("name, email, role, status are required")
	}

	status, err := domain.NormalizeStatus(input.Status)
	if err != nil {
		return "", err
	}

	emp := domain.Employee{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Role:      input.Role,
		Status:    status,
		CreatedAt: time.Now(),
	}

	if err := uc.employeeRepo.Create(ctx, &emp); err != nil {
		return "", err
	}
	return emp.ID, nil
}

func (uc *directoryUseCase) Get(ctx context.Context, id string) (*domain.Employee, error) {
	if id == "" {
		return nil, errprocess.Validation("employeeId is required")
	}
	return uc.employeeRepo.FindByID(ctx, id)
}

func (uc *directoryUseCase) List(ctx context.Context) ([]domain.Employee, error) {
	return uc.employeeRepo.List(ctx)
}

// Update 部分更新，缺的欄位保留舊值
func (uc *directoryUseCase) Update(ctx context.Context, id string, input UpdateEmployeeInput) error {
	if id == "" {
		return errprocess.Validation("employeeId is required")
	}

	patch := domain.EmployeeUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Role:    input.Role,
	}

	if input.Status != nil {
		status, err := domain.NormalizeStatus(*input.Status)
		if err != nil {
			return err
		}
		patch.Status = &status
	}

	return uc.employeeRepo.Update(ctx, id, patch)
}

// Delete 刪除員工；對話 transcript 不會連帶刪除
func (uc *directoryUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errprocess.Validation("employeeId is required")
	}
	return uc.employeeRepo.Delete(ctx, id)
}
