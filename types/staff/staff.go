package staff

import (
	"github.com/go-playground/validator/v10"
)

type StoreStaffRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  string `json:"role"`
}

func (req *StoreStaffRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

type UpdateStaffRequest struct {
	Name   *string `json:"name"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email"`
	Role   *string `json:"role"`
	Active *bool   `json:"active"`
}
