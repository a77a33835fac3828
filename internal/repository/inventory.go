package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/repository/dao"
)

var (
	ErrInventoryNotFound = dao.ErrInventoryNotFound
)

type InventoryDAO interface {
	FindAll(ctx context.Context) ([]dao.Inventory, error)
	FindByID(ctx context.Context, id uint) (dao.Inventory, error)
	Insert(ctx context.Context, inventory dao.Inventory) (dao.Inventory, error)
	Update(ctx context.Context, inventory dao.Inventory) (dao.Inventory, error)
	Delete(ctx context.Context, id uint) (dao.Inventory, error)
}

type InventoryRepository struct {
	dao InventoryDAO
}

func NewInventoryRepository(dao InventoryDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

func (r *InventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	inventories := make([]domain.Inventory, 0, len(found))
	for _, i := range found {
		inventories = append(inventories, r.daoToDomain(i))
	}

	return inventories, nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uint) (domain.Inventory, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InventoryRepository) Create(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(inventory))
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InventoryRepository) Update(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(inventory))
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) (domain.Inventory, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *InventoryRepository) domainToDao(i domain.Inventory) dao.Inventory {
	return dao.Inventory{
		ID:             i.ID,
		StoreID:        i.StoreID,
		EmployeeID:     i.EmployeeID,
		Date:           i.Date,
		Flavor:         i.Flavor,
		IsSeasonFlavor: i.IsSeasonFlavor,
		Quantity:       i.Quantity,
	}
}

func (r *InventoryRepository) daoToDomain(i dao.Inventory) domain.Inventory {
	return domain.Inventory{
		ID:             i.ID,
		StoreID:        i.StoreID,
		EmployeeID:     i.EmployeeID,
		Date:           i.Date,
		Flavor:         i.Flavor,
		IsSeasonFlavor: i.IsSeasonFlavor,
		Quantity:       i.Quantity,
	}
}
