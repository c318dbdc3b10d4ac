package team

import (
	"time"

	"dispatch-backend/models/staff"
)

// Team is a named group of staff with one designated crew commander.
// Assigning a team to a request derives the request's staff from the
// commander.
type Team struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Foreign key for the crew commander relationship
	CrewCommanderID uint        `gorm:"not null" json:"crew_commander_id"`
	CrewCommander   staff.Staff `gorm:"foreignKey:CrewCommanderID" json:"crew_commander"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TeamMember is the join relation between teams and staff.
type TeamMember struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TeamID uint `gorm:"not null;index" json:"team_id"`

	StaffID uint        `gorm:"not null" json:"staff_id"`
	Staff   staff.Staff `gorm:"foreignKey:StaffID" json:"staff"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
