package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/repository"
)

var (
	ErrInventoryNotFound = repository.ErrInventoryNotFound

	ErrUnknownStore    = errors.New("referenced store does not exist")
	ErrUnknownEmployee = errors.New("referenced employee does not exist")
)

type InventoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Inventory, error)
	FindByID(ctx context.Context, id uint) (domain.Inventory, error)
	Create(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	Update(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	Delete(ctx context.Context, id uint) (domain.Inventory, error)
}

type InventoryService struct {
	repo         InventoryRepository
	storeRepo    StoreRepository
	employeeRepo EmployeeRepository
}

func NewInventoryService(repo InventoryRepository, storeRepo StoreRepository, employeeRepo EmployeeRepository) *InventoryService {
	return &InventoryService{
		repo:         repo,
		storeRepo:    storeRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *InventoryService) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	inventories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return inventories, nil
}

func (s *InventoryService) GetInventory(ctx context.Context, id uint) (domain.Inventory, error) {
	inventory, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return inventory, nil
}

func (s *InventoryService) CreateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	if err := s.checkReferences(ctx, inventory); err != nil {
		return domain.Inventory{}, err
	}

	created, err := s.repo.Create(ctx, inventory)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateInventory reports ErrInventoryNotFound before looking at the
// referenced store and employee.
func (s *InventoryService) UpdateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	if _, err := s.repo.FindByID(ctx, inventory.ID); err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.checkReferences(ctx, inventory); err != nil {
		return domain.Inventory{}, err
	}

	updated, err := s.repo.Update(ctx, inventory)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *InventoryService) DeleteInventory(ctx context.Context, id uint) (domain.Inventory, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}

func (s *InventoryService) checkReferences(ctx context.Context, inventory domain.Inventory) error {
	if _, err := s.storeRepo.FindByID(ctx, inventory.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return ErrUnknownStore
		}
		return fmt.Errorf("s.storeRepo.FindByID -> %w", err)
	}

	if _, err := s.employeeRepo.FindByID(ctx, inventory.EmployeeID); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return ErrUnknownEmployee
		}
		return fmt.Errorf("s.employeeRepo.FindByID -> %w", err)
	}

	return nil
}
