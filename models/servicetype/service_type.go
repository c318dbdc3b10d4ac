package servicetype

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType represents a delivery service category (e.g. same-day,
// scheduled, bulk) that a request is priced against.
type ServiceType struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	BaseCharge  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"base_charge"`
	Active      bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ServiceCharge is a per-client price override for a service type.
type ServiceCharge struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ServiceTypeID uint        `gorm:"not null" json:"service_type_id"`
	ServiceType   ServiceType `gorm:"foreignKey:ServiceTypeID" json:"service_type"`

	ClientID uint            `gorm:"not null" json:"client_id"`
	Charge   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"charge"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
