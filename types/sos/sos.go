package sos

import (
	"github.com/go-playground/validator/v10"
)

type StoreSOSRequest struct {
	StaffID   uint     `json:"staffId" validate:"required"`
	RequestID *uint    `json:"requestId"`
	Message   string   `json:"message" validate:"required"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (req *StoreSOSRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}
