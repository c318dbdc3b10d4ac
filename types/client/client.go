package client

import (
	"github.com/go-playground/validator/v10"
)

type StoreClientRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address"`
}

func (req *StoreClientRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

type UpdateClientRequest struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contactName"`
	ContactPhone *string `json:"contactPhone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
}
