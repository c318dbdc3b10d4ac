package request

import (
	"fmt"
	"time"

	requestModel "dispatch-backend/models/request"

	"github.com/shopspring/decimal"
)

// CreateRequest represents the request payload for creating a dispatch
// request. BranchID falls back to the authenticated branch when omitted;
// BranchName is resolved from BranchID when absent.
type CreateRequest struct {
	BranchID         uint             `json:"branchId"`
	BranchName       string           `json:"branchName"`
	ServiceTypeID    uint             `json:"serviceTypeId" validate:"required"`
	PickupLocation   string           `json:"pickupLocation" validate:"required"`
	DeliveryLocation string           `json:"deliveryLocation" validate:"required"`
	PickupDate       time.Time        `json:"pickupDate" validate:"required"`
	Description      string           `json:"description"`
	Priority         string           `json:"priority"`
	MyStatus         *int             `json:"myStatus"`
	Price            *decimal.Decimal `json:"price" validate:"required"`
	Latitude         *float64         `json:"latitude"`
	Longitude        *float64         `json:"longitude"`
	TeamID           *uint            `json:"teamId"`
}

// Validate checks the required fields with the messages the clients expect.
func (r *CreateRequest) Validate() error {
	if r.ServiceTypeID == 0 {
		return fmt.Errorf("serviceTypeId is required")
	}
	if r.PickupLocation == "" {
		return fmt.Errorf("pickupLocation is required")
	}
	if r.DeliveryLocation == "" {
		return fmt.Errorf("deliveryLocation is required")
	}
	if r.PickupDate.IsZero() {
		return fmt.Errorf("pickupDate is required")
	}
	if r.Price == nil {
		return fmt.Errorf("price is required")
	}
	if r.Priority != "" && !requestModel.IsValidPriority(r.Priority) {
		return fmt.Errorf("priority must be one of 'low', 'medium' or 'high'")
	}
	return nil
}

// PatchRequest is the allow-listed partial update for a request. Fields are
// pointers so an omitted field and an explicit zero can be told apart; the
// JSON names follow the storage columns, which is the observed write
// contract. Unknown keys are rejected at decode time.
type PatchRequest struct {
	PickupLocation   *string          `json:"pickup_location"`
	DeliveryLocation *string          `json:"delivery_location"`
	PickupDate       *time.Time       `json:"pickup_date"`
	Description      *string          `json:"description"`
	Priority         *string          `json:"priority"`
	Status           *string          `json:"status"`
	MyStatus         *int             `json:"my_status"`
	Price            *decimal.Decimal `json:"price"`
	Latitude         *float64         `json:"latitude"`
	Longitude        *float64         `json:"longitude"`
	TeamID           *uint            `json:"team_id"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r *PatchRequest) IsEmpty() bool {
	return r.PickupLocation == nil && r.DeliveryLocation == nil &&
		r.PickupDate == nil && r.Description == nil && r.Priority == nil &&
		r.Status == nil && r.MyStatus == nil && r.Price == nil &&
		r.Latitude == nil && r.Longitude == nil && r.TeamID == nil
}

// Validate checks the fields that carry an enumeration.
func (r *PatchRequest) Validate() error {
	if r.Priority != nil && !requestModel.IsValidPriority(*r.Priority) {
		return fmt.Errorf("priority must be one of 'low', 'medium' or 'high'")
	}
	return nil
}

// ListFilters is the conjunction of optional request list filters. MyStatus
// is a pointer so a zero filter is still applied (presence check, not
// truthiness).
type ListFilters struct {
	Status     string
	MyStatus   *int
	BranchID   *uint
	PickupDate *time.Time
}

// Record is the mapped API shape of a stored request. Field names are
// camelCase except team_id, which the deployed clients consume snake_cased.
type Record struct {
	ID               uint            `json:"id"`
	TrackingCode     string          `json:"trackingCode"`
	BranchID         uint            `json:"branchId"`
	BranchName       *string         `json:"branchName"`
	ClientName       *string         `json:"clientName"`
	ServiceTypeID    uint            `json:"serviceTypeId"`
	ServiceTypeName  *string         `json:"serviceTypeName"`
	PickupLocation   string          `json:"pickupLocation"`
	DeliveryLocation string          `json:"deliveryLocation"`
	PickupDate       time.Time       `json:"pickupDate"`
	Description      *string         `json:"description,omitempty"`
	Priority         string          `json:"priority"`
	Status           string          `json:"status"`
	MyStatus         int             `json:"myStatus"`
	Price            decimal.Decimal `json:"price"`
	Latitude         *float64        `json:"latitude,omitempty"`
	Longitude        *float64        `json:"longitude,omitempty"`
	TeamID           *uint           `json:"team_id,omitempty"`
	StaffID          *uint           `json:"staffId,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
