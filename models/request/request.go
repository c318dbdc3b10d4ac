package request

import (
	"time"

	"dispatch-backend/models/branch"
	"dispatch-backend/models/servicetype"
	"dispatch-backend/models/team"

	"github.com/shopspring/decimal"
)

// Request represents a single pickup/delivery job created by a branch.
type Request struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TrackingCode string `gorm:"type:varchar(64);not null;unique" json:"tracking_code"`

	// Foreign key for branch relationship
	BranchID uint          `gorm:"not null" json:"branch_id"`
	Branch   branch.Branch `gorm:"foreignKey:BranchID" json:"branch"`

	// Foreign key for service type relationship
	ServiceTypeID uint                    `gorm:"not null" json:"service_type_id"`
	ServiceType   servicetype.ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type"`

	PickupLocation   string    `gorm:"type:text;not null" json:"pickup_location"`
	DeliveryLocation string    `gorm:"type:text;not null" json:"delivery_location"`
	PickupDate       time.Time `gorm:"not null" json:"pickup_date"`
	Description      *string   `gorm:"type:text" json:"description,omitempty"`
	Priority         string    `gorm:"type:varchar(20);not null;default:medium" json:"priority"`

	Status   string `gorm:"type:varchar(50);not null;default:pending" json:"status"`
	MyStatus int    `gorm:"not null;default:0" json:"my_status"`

	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Latitude  *float64        `json:"latitude,omitempty"`
	Longitude *float64        `json:"longitude,omitempty"`

	// Optional team assignment; StaffID is derived from the team's crew
	// commander when a team is attached.
	TeamID *uint      `json:"team_id,omitempty"`
	Team   *team.Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`

	StaffID *uint `json:"staff_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
