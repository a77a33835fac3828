package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// InventoryRequest is the body of both create and full-replace update.
// Pointer fields tell an absent key apart from false or 0.
type InventoryRequest struct {
	StoreID        *uint  `json:"store_id" example:"1"`
	EmployeeID     *uint  `json:"employee_id" example:"1"`
	Date           string `json:"date" example:"2024-05-01" format:"YYYY-MM-DD"`
	Flavor         string `json:"flavor" example:"pistachio"`
	IsSeasonFlavor *bool  `json:"is_season_flavor" example:"false"`
	Quantity       *int   `json:"quantity" example:"24"`
}

func (req *InventoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StoreID, validation.Required),
		validation.Field(&req.EmployeeID, validation.Required),
		validation.Field(&req.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&req.Flavor, validation.Required, notBlank, noNUL, validation.RuneLength(1, maxNameLength)),
		validation.Field(&req.IsSeasonFlavor, validation.NotNil),
		validation.Field(&req.Quantity, validation.NotNil),
	)
}

// ParsedDate must only be called after Validate succeeded.
func (req *InventoryRequest) ParsedDate() time.Time {
	date, _ := time.Parse(dateLayout, req.Date)
	return date
}
