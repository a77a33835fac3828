package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type EmployeeRequest struct {
	Name string `json:"name" example:"Ana"`
}

func (req *EmployeeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, notBlank, noNUL, validation.RuneLength(1, maxNameLength)),
	)
}
