package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vietanh2810/creamery-api/internal/domain"
)

type mockStoreService struct {
	mock.Mock
}

func (m *mockStoreService) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *mockStoreService) GetStore(ctx context.Context, id uint) (domain.Store, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *mockStoreService) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	args := m.Called(ctx, store)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *mockStoreService) UpdateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	args := m.Called(ctx, store)
	return args.Get(0).(domain.Store), args.Error(1)
}

func (m *mockStoreService) DeleteStore(ctx context.Context, id uint) (domain.Store, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Store), args.Error(1)
}

type mockEmployeeService struct {
	mock.Mock
}

func (m *mockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *mockEmployeeService) GetEmployee(ctx context.Context, id uint) (domain.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeService) CreateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeService) UpdateEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(domain.Employee), args.Error(1)
}

func (m *mockEmployeeService) DeleteEmployee(ctx context.Context, id uint) (domain.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Employee), args.Error(1)
}

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Inventory), args.Error(1)
}

func (m *mockInventoryService) GetInventory(ctx context.Context, id uint) (domain.Inventory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *mockInventoryService) CreateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	args := m.Called(ctx, inventory)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *mockInventoryService) UpdateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	args := m.Called(ctx, inventory)
	return args.Get(0).(domain.Inventory), args.Error(1)
}

func (m *mockInventoryService) DeleteInventory(ctx context.Context, id uint) (domain.Inventory, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Inventory), args.Error(1)
}
