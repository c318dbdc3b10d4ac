package notice

import (
	"github.com/go-playground/validator/v10"
)

type StoreNoticeRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Audience string `json:"audience"`
}

func (req *StoreNoticeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

type UpdateNoticeRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Audience *string `json:"audience"`
}
