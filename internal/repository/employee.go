package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/repository/dao"
)

var (
	ErrEmployeeNotFound = dao.ErrEmployeeNotFound
)

type EmployeeDAO interface {
	FindAll(ctx context.Context) ([]dao.Employee, error)
	FindByID(ctx context.Context, id uint) (dao.Employee, error)
	Insert(ctx context.Context, employee dao.Employee) (dao.Employee, error)
	Update(ctx context.Context, employee dao.Employee) (dao.Employee, error)
	Delete(ctx context.Context, id uint) (dao.Employee, error)
}

type EmployeeRepository struct {
	dao EmployeeDAO
}

func NewEmployeeRepository(dao EmployeeDAO) *EmployeeRepository {
	return &EmployeeRepository{
		dao: dao,
	}
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	employees := make([]domain.Employee, 0, len(found))
	for _, s := range found {
		employees = append(employees, r.daoToDomain(s))
	}

	return employees, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uint) (domain.Employee, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(employee))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(employee))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) (domain.Employee, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *EmployeeRepository) domainToDao(s domain.Employee) dao.Employee {
	return dao.Employee{
		ID:   s.ID,
		Name: s.Name,
	}
}

func (r *EmployeeRepository) daoToDomain(s dao.Employee) domain.Employee {
	return domain.Employee{
		ID:   s.ID,
		Name: s.Name,
	}
}
