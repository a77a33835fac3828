package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrInventoryNotFound = errors.New("inventory record not found")
)

// Inventory holds store_id and employee_id as bare integers; the table
// declares no foreign keys so deleting a store or employee never cascades.
type Inventory struct {
	ID             uint      `gorm:"primaryKey"`
	StoreID        uint      `gorm:"not null"`
	EmployeeID     uint      `gorm:"not null"`
	Date           time.Time `gorm:"type:date;not null"`
	Flavor         string    `gorm:"type:varchar(255);not null"`
	IsSeasonFlavor bool      `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
}

func (Inventory) TableName() string {
	return "inventory"
}

type InventoryDAO struct {
	db *gorm.DB
}

func NewInventoryDAO(db *gorm.DB) *InventoryDAO {
	return &InventoryDAO{
		db: db,
	}
}

func (d *InventoryDAO) FindAll(ctx context.Context) ([]Inventory, error) {
	inventories := []Inventory{}
	result := d.db.WithContext(ctx).Order("id").Find(&inventories)
	if result.Error != nil {
		return nil, result.Error
	}

	return inventories, nil
}

func (d *InventoryDAO) FindByID(ctx context.Context, id uint) (Inventory, error) {
	var inventory Inventory
	result := d.db.WithContext(ctx).First(&inventory, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Inventory{}, ErrInventoryNotFound
		}

		return Inventory{}, result.Error
	}

	return inventory, nil
}

func (d *InventoryDAO) Insert(ctx context.Context, inventory Inventory) (Inventory, error) {
	result := d.db.WithContext(ctx).Create(&inventory)
	if result.Error != nil {
		return Inventory{}, translateErr(result.Error)
	}

	return inventory, nil
}

// Update replaces all six columns of an existing row.
func (d *InventoryDAO) Update(ctx context.Context, inventory Inventory) (Inventory, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Inventory
		if err := tx.First(&existing, inventory.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInventoryNotFound
			}
			return err
		}

		if err := tx.Save(&inventory).Error; err != nil {
			return translateErr(err)
		}

		return nil
	})
	if err != nil {
		return Inventory{}, err
	}

	return inventory, nil
}

func (d *InventoryDAO) Delete(ctx context.Context, id uint) (Inventory, error) {
	var inventory Inventory
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inventory, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInventoryNotFound
			}
			return err
		}

		return tx.Delete(&inventory).Error
	})
	if err != nil {
		return Inventory{}, err
	}

	return inventory, nil
}
