package branch

import (
	"github.com/go-playground/validator/v10"
)

type StoreBranchRequest struct {
	ClientID uint   `json:"clientId" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

func (req *StoreBranchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}
