package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/repository/dao"
)

var (
	ErrStoreNotFound = dao.ErrStoreNotFound
	ErrValueTooLong  = dao.ErrValueTooLong
)

type StoreDAO interface {
	FindAll(ctx context.Context) ([]dao.Store, error)
	FindByID(ctx context.Context, id uint) (dao.Store, error)
	Insert(ctx context.Context, store dao.Store) (dao.Store, error)
	Update(ctx context.Context, store dao.Store) (dao.Store, error)
	Delete(ctx context.Context, id uint) (dao.Store, error)
}

type StoreRepository struct {
	dao StoreDAO
}

func NewStoreRepository(dao StoreDAO) *StoreRepository {
	return &StoreRepository{
		dao: dao,
	}
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stores := make([]domain.Store, 0, len(found))
	for _, s := range found {
		stores = append(stores, r.daoToDomain(s))
	}

	return stores, nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id uint) (domain.Store, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *StoreRepository) Create(ctx context.Context, store domain.Store) (domain.Store, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(store))
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *StoreRepository) Update(ctx context.Context, store domain.Store) (domain.Store, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(store))
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *StoreRepository) Delete(ctx context.Context, id uint) (domain.Store, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return domain.Store{}, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return r.daoToDomain(deleted), nil
}

func (r *StoreRepository) domainToDao(s domain.Store) dao.Store {
	return dao.Store{
		ID:   s.ID,
		Name: s.Name,
	}
}

func (r *StoreRepository) daoToDomain(s dao.Store) domain.Store {
	return domain.Store{
		ID:   s.ID,
		Name: s.Name,
	}
}
