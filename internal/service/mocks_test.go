package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/creamery-api/internal/domain"
)

type mockStoreRepository struct {
	mock.Mock
}

func (m *mockStoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *mockStoreRepository) FindByID(ctx context.Context, id uint) (domain.Store, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *mockStoreRepository) Create(ctx context.Context, store domain.Store) (domain.Store, error) {
	args := m.Called(ctx, store)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *mockStoreRepository) Update(ctx context.Context, store domain.Store) (domain.Store, error) {
	args := m.Called(ctx, store)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *mockStoreRepository) Delete(ctx context.Context, id uint) (domain.Store, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Store), args.Error(1)
}

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) FindByID(ctx context.Context, id uint) (domain.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) Update(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, id uint) (domain.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Employee), args.Error(1)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) FindByID(ctx context.Context, id uint) (domain.Inventory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) Create(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	args := m.Called(ctx, inventory)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) Update(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	args := m.Called(ctx, inventory)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) Delete(ctx context.Context, id uint) (domain.Inventory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Inventory), args.Error(1)
}
