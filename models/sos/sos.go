package sos

import (
	"time"
)

// SOS is an emergency alert raised by staff in the field.
// TableName pins the table name; GORM's pluralizer mangles "SOS".
func (SOS) TableName() string {
	return "sos"
}

type SOS struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID   uint      `gorm:"not null" json:"staff_id"`
	RequestID *uint     `json:"request_id,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Resolved  bool      `gorm:"not null;default:false" json:"resolved"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
