package client

import (
	"time"
)

// Client represents a customer organization that owns one or more branches.
type Client struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	ContactName  *string    `gorm:"type:varchar(255)" json:"contact_name,omitempty"`
	ContactPhone *string    `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	Email        *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address      *string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
