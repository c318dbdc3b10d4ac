package branch

import (
	"time"

	"dispatch-backend/models/client"
)

// Branch is an authenticated tenant unit that creates and owns delivery
// requests. Login happens at branch level, so credentials live here.
type Branch struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for client relationship
	ClientID uint          `gorm:"not null" json:"client_id"`
	Client   client.Client `gorm:"foreignKey:ClientID" json:"client"`

	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Email        string  `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null" json:"-"`
	Role         string  `gorm:"type:varchar(50);not null;default:branch" json:"role"`
	Phone        *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Location     *string `gorm:"type:text" json:"location,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
