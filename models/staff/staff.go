package staff

import (
	"time"
)

// Staff represents a dispatch worker (driver, rider, crew member).
// TableName keeps the table singular, matching the dispatch schema.
func (Staff) TableName() string {
	return "staff"
}

type Staff struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string     `gorm:"type:varchar(20);not null" json:"phone"`
	Email     *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Role      string     `gorm:"type:varchar(50);not null;default:staff" json:"role"`
	Active    bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
