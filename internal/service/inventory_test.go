package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/creamery-api/internal/domain"
)

func newInventoryFixture() (*InventoryService, *mockInventoryRepository, *mockStoreRepository, *mockEmployeeRepository) {
	repo := &mockInventoryRepository{}
	storeRepo := &mockStoreRepository{}
	employeeRepo := &mockEmployeeRepository{}

	return NewInventoryService(repo, storeRepo, employeeRepo), repo, storeRepo, employeeRepo
}

func sampleInventory() domain.Inventory {
	return domain.Inventory{
		StoreID:        1,
		EmployeeID:     2,
		Date:           time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Flavor:         "pistachio",
		IsSeasonFlavor: true,
		Quantity:       40,
	}
}

func TestInventoryService_CreateInventory(t *testing.T) {
	ctx := context.Background()
	svc, repo, storeRepo, employeeRepo := newInventoryFixture()

	in := sampleInventory()
	out := in
	out.ID = 7

	storeRepo.On("FindByID", ctx, uint(1)).Return(domain.Store{ID: 1, Name: "Main St"}, nil)
	employeeRepo.On("FindByID", ctx, uint(2)).Return(domain.Employee{ID: 2, Name: "Ana"}, nil)
	repo.On("Create", ctx, in).Return(out, nil)

	created, err := svc.CreateInventory(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, out, created)

	repo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
	employeeRepo.AssertExpectations(t)
}

func TestInventoryService_CreateInventory_UnknownStore(t *testing.T) {
	ctx := context.Background()
	svc, repo, storeRepo, employeeRepo := newInventoryFixture()

	storeRepo.On("FindByID", ctx, uint(1)).Return(domain.Store{}, ErrStoreNotFound)

	_, err := svc.CreateInventory(ctx, sampleInventory())
	assert.ErrorIs(t, err, ErrUnknownStore)

	repo.AssertNumberOfCalls(t, "Create", 0)
	employeeRepo.AssertNumberOfCalls(t, "FindByID", 0)
}

func TestInventoryService_CreateInventory_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, repo, storeRepo, employeeRepo := newInventoryFixture()

	storeRepo.On("FindByID", ctx, uint(1)).Return(domain.Store{ID: 1}, nil)
	employeeRepo.On("FindByID", ctx, uint(2)).Return(domain.Employee{}, ErrEmployeeNotFound)

	_, err := svc.CreateInventory(ctx, sampleInventory())
	assert.ErrorIs(t, err, ErrUnknownEmployee)
	repo.AssertNumberOfCalls(t, "Create", 0)
}

func TestInventoryService_CreateInventory_LookupFailure(t *testing.T) {
	ctx := context.Background()
	svc, _, storeRepo, _ := newInventoryFixture()
	boom := errors.New("connection refused")

	storeRepo.On("FindByID", ctx, uint(1)).Return(domain.Store{}, boom)

	_, err := svc.CreateInventory(ctx, sampleInventory())
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUnknownStore)
}

func TestInventoryService_UpdateInventory_MissingRecordWins(t *testing.T) {
	ctx := context.Background()
	svc, repo, storeRepo, _ := newInventoryFixture()

	in := sampleInventory()
	in.ID = 99
	repo.On("FindByID", ctx, uint(99)).Return(domain.Inventory{}, ErrInventoryNotFound)

	_, err := svc.UpdateInventory(ctx, in)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
	storeRepo.AssertNumberOfCalls(t, "FindByID", 0)
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	ctx := context.Background()
	svc, repo, storeRepo, employeeRepo := newInventoryFixture()

	in := sampleInventory()
	in.ID = 7
	in.Quantity = 0

	repo.On("FindByID", ctx, uint(7)).Return(sampleInventory(), nil)
	storeRepo.On("FindByID", ctx, uint(1)).Return(domain.Store{ID: 1}, nil)
	employeeRepo.On("FindByID", ctx, uint(2)).Return(domain.Employee{ID: 2}, nil)
	repo.On("Update", ctx, in).Return(in, nil)

	updated, err := svc.UpdateInventory(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	repo.AssertExpectations(t)
}

func TestInventoryService_ListGetDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newInventoryFixture()

	record := sampleInventory()
	record.ID = 3
	repo.On("FindAll", ctx).Return([]domain.Inventory{record}, nil)
	repo.On("FindByID", ctx, uint(3)).Return(record, nil)
	repo.On("Delete", ctx, uint(4)).Return(domain.Inventory{}, ErrInventoryNotFound)

	all, err := svc.ListInventories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	found, err := svc.GetInventory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, record, found)

	_, err = svc.DeleteInventory(ctx, 4)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}
