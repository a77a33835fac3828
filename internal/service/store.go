package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/creamery-api/internal/domain"
	"github.com/vietanh2810/creamery-api/internal/repository"
)

var (
	ErrStoreNotFound = repository.ErrStoreNotFound
	ErrValueTooLong  = repository.ErrValueTooLong
)

type StoreRepository interface {
	FindAll(ctx context.Context) ([]domain.Store, error)
	FindByID(ctx context.Context, id uint) (domain.Store, error)
	Create(ctx context.Context, store domain.Store) (domain.Store, error)
	Update(ctx context.Context, store domain.Store) (domain.Store, error)
	Delete(ctx context.Context, id uint) (domain.Store, error)
}

type StoreService struct {
	repo StoreRepository
}

func NewStoreService(repo StoreRepository) *StoreService {
	return &StoreService{
		repo: repo,
	}
}

func (s *StoreService) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stores, nil
}

func (s *StoreService) GetStore(ctx context.Context, id uint) (domain.Store, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return store, nil
}

func (s *StoreService) CreateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	created, err := s.repo.Create(ctx, store)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *StoreService) UpdateStore(ctx context.Context, store domain.Store) (domain.Store, error) {
	updated, err := s.repo.Update(ctx, store)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *StoreService) DeleteStore(ctx context.Context, id uint) (domain.Store, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.Store{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return deleted, nil
}
