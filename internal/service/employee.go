package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/repository"
)

var (
	ErrEmployeeNotFound = repository.ErrEmployeeNotFound
)

type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id uint) (domain.Employee, error)
	Create(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	Update(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	Delete(ctx context.Context, id uint) (domain.Employee, error)
}

type EmployeeService struct {
	repo EmployeeRepository
}

func NewEmployeeService(repo EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo: repo,
	}
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return employees, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (domain.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return employee, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	updated, err := s.repo.Update(ctx, employee)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) (domain.Employee, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
