package response

import (
	"time"

	"github.com/vietanh2810/creamery-api/internal/domain"
)

type Inventory struct {
	ID             uint   `json:"id"`
	StoreID        uint   `json:"store_id"`
	EmployeeID     uint   `json:"employee_id"`
	Date           string `json:"date" example:"2024-05-01"`
	Flavor         string `json:"flavor"`
	IsSeasonFlavor bool   `json:"is_season_flavor"`
	Quantity       int    `json:"quantity"`
}

func NewInventory(i domain.Inventory) Inventory {
	return Inventory{
		ID:             i.ID,
		StoreID:        i.StoreID,
		EmployeeID:     i.EmployeeID,
		Date:           i.Date.Format(time.DateOnly),
		Flavor:         i.Flavor,
		IsSeasonFlavor: i.IsSeasonFlavor,
		Quantity:       i.Quantity,
	}
}

func NewInventories(inventories []domain.Inventory) []Inventory {
	resp := make([]Inventory, 0, len(inventories))
	for _, i := range inventories {
		resp = append(resp, NewInventory(i))
	}

	return resp
}
