package servicetype

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type StoreServiceTypeRequest struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description"`
	BaseCharge  *decimal.Decimal `json:"baseCharge"`
}

func (req *StoreServiceTypeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

type UpdateServiceTypeRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	BaseCharge  *decimal.Decimal `json:"baseCharge"`
	Active      *bool            `json:"active"`
}

type StoreServiceChargeRequest struct {
	ServiceTypeID uint             `json:"serviceTypeId" validate:"required"`
	ClientID      uint             `json:"clientId" validate:"required"`
	Charge        *decimal.Decimal `json:"charge" validate:"required"`
}

func (req *StoreServiceChargeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}
