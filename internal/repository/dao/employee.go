package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
)

type Employee struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (Employee) TableName() string {
	return "employee"
}

type EmployeeDAO struct {
	db *gorm.DB
}

func NewEmployeeDAO(db *gorm.DB) *EmployeeDAO {
	return &EmployeeDAO{
		db: db,
	}
}

func (d *EmployeeDAO) FindAll(ctx context.Context) ([]Employee, error) {
	employees := []Employee{}
	result := d.db.WithContext(ctx).Order("id").Find(&employees)
	if result.Error != nil {
		return nil, result.Error
	}

	return employees, nil
}

func (d *EmployeeDAO) FindByID(ctx context.Context, id uint) (Employee, error) {
	var employee Employee
	result := d.db.WithContext(ctx).First(&employee, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Employee{}, ErrEmployeeNotFound
		}

		return Employee{}, result.Error
	}

	return employee, nil
}

func (d *EmployeeDAO) Insert(ctx context.Context, employee Employee) (Employee, error) {
	result := d.db.WithContext(ctx).Create(&employee)
	if result.Error != nil {
		return Employee{}, translateErr(result.Error)
	}

	return employee, nil
}

func (d *EmployeeDAO) Update(ctx context.Context, employee Employee) (Employee, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Employee
		if err := tx.First(&existing, employee.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		existing.Name = employee.Name
		if err := tx.Save(&existing).Error; err != nil {
			return translateErr(err)
		}

		employee = existing
		return nil
	})
	if err != nil {
		return Employee{}, err
	}

	return employee, nil
}

func (d *EmployeeDAO) Delete(ctx context.Context, id uint) (Employee, error) {
	var employee Employee
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&employee, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		return tx.Delete(&employee).Error
	})
	if err != nil {
		return Employee{}, err
	}

	return employee, nil
}
