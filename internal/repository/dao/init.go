package dao

import "gorm.io/gorm"

// InitTables creates or updates the store, employee and inventory tables.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Store{},
		&Employee{},
		&Inventory{},
	)
}
