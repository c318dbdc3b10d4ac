package team

import (
	"fmt"
)

// CreateTeamRequest carries a team with its full member list; the team and
// every member row are written in one transaction.
type CreateTeamRequest struct {
	Name            string `json:"name" validate:"required"`
	CrewCommanderID uint   `json:"crewCommanderId" validate:"required"`
	StaffIDs        []uint `json:"staffIds" validate:"required,min=1"`
}

func (r *CreateTeamRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.CrewCommanderID == 0 {
		return fmt.Errorf("crewCommanderId is required")
	}
	if len(r.StaffIDs) == 0 {
		return fmt.Errorf("staffIds must contain at least one staff member")
	}
	return nil
}
