package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type StoreRequest struct {
	Name string `json:"name" example:"Main St"`
}

func (req *StoreRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, notBlank, noNUL, validation.RuneLength(1, maxNameLength)),
	)
}
