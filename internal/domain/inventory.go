package domain

import "time"

// Inventory is a daily stock entry of one flavor at a store, recorded by an employee.
// StoreID and EmployeeID are plain identifiers; the schema carries no foreign keys.
type Inventory struct {
	ID             uint
	StoreID        uint
	EmployeeID     uint
	Date           time.Time
	Flavor         string
	IsSeasonFlavor bool
	Quantity       int
}
