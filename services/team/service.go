package team

import (
	"errors"
	"fmt"

	"dispatch-backend/logger"
	staffModel "dispatch-backend/models/staff"
	teamModel "dispatch-backend/models/team"
	teamTypes "dispatch-backend/types/team"

	"gorm.io/gorm"
)

var (
	ErrStaffNotFound = errors.New("staff not found")
	ErrTeamNotFound  = errors.New("team not found")
)

// Service owns team creation and commander resolution.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Create writes the team and its full member list in one transaction; a
// failed member insert rolls the whole team back.
func (s *Service) Create(input teamTypes.CreateTeamRequest) (teamModel.Team, error) {
	var created teamModel.Team

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var commander staffModel.Staff
		if err := tx.First(&commander, input.CrewCommanderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return err
		}

		team := teamModel.Team{
			Name:            input.Name,
			CrewCommanderID: commander.ID,
		}
		if err := tx.Create(&team).Error; err != nil {
			logger.Error("Failed to create team", err)
			return err
		}

		for _, staffID := range input.StaffIDs {
			var member staffModel.Staff
			if err := tx.First(&member, staffID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrStaffNotFound
				}
				return err
			}
			teamMember := teamModel.TeamMember{
				TeamID:  team.ID,
				StaffID: member.ID,
			}
			if err := tx.Create(&teamMember).Error; err != nil {
				logger.Error("Failed to create team member", err)
				return err
			}
		}

		return tx.Preload("CrewCommander").Preload("Members.Staff").First(&created, team.ID).Error
	})
	if err != nil {
		return teamModel.Team{}, err
	}

	logger.Success(fmt.Sprintf("Team created successfully with ID: %d", created.ID))
	return created, nil
}

// List returns all teams with their commanders and members preloaded.
func (s *Service) List() ([]teamModel.Team, error) {
	var teams []teamModel.Team
	if err := s.DB.Preload("CrewCommander").Preload("Members.Staff").
		Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// ResolveCommander returns the staff id of a team's crew commander.
func (s *Service) ResolveCommander(teamID uint) (uint, error) {
	var team teamModel.Team
	if err := s.DB.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTeamNotFound
		}
		return 0, err
	}
	return team.CrewCommanderID, nil
}
