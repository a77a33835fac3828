package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrStoreNotFound = errors.New("store not found")
)

type Store struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (Store) TableName() string {
	return "store"
}

type StoreDAO struct {
	db *gorm.DB
}

func NewStoreDAO(db *gorm.DB) *StoreDAO {
	return &StoreDAO{
		db: db,
	}
}

func (d *StoreDAO) FindAll(ctx context.Context) ([]Store, error) {
	stores := []Store{}
	result := d.db.WithContext(ctx).Order("id").Find(&stores)
	if result.Error != nil {
		return nil, result.Error
	}

	return stores, nil
}

func (d *StoreDAO) FindByID(ctx context.Context, id uint) (Store, error) {
	var store Store
	result := d.db.WithContext(ctx).First(&store, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Store{}, ErrStoreNotFound
		}

		return Store{}, result.Error
	}

	return store, nil
}

func (d *StoreDAO) Insert(ctx context.Context, store Store) (Store, error) {
	result := d.db.WithContext(ctx).Create(&store)
	if result.Error != nil {
		return Store{}, translateErr(result.Error)
	}

	return store, nil
}

func (d *StoreDAO) Update(ctx context.Context, store Store) (Store, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Store
		if err := tx.First(&existing, store.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoreNotFound
			}
			return err
		}

		existing.Name = store.Name
		if err := tx.Save(&existing).Error; err != nil {
			return translateErr(err)
		}

		store = existing
		return nil
	})
	if err != nil {
		return Store{}, err
	}

	return store, nil
}

// Delete removes the row and returns it as it was before deletion.
func (d *StoreDAO) Delete(ctx context.Context, id uint) (Store, error) {
	var store Store
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&store, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoreNotFound
			}
			return err
		}

		return tx.Delete(&store).Error
	})
	if err != nil {
		return Store{}, err
	}

	return store, nil
}
