package team

import (
	"testing"

	staffModel "dispatch-backend/models/staff"
	teamModel "dispatch-backend/models/team"
	teamTypes "dispatch-backend/types/team"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (*gorm.DB, []staffModel.Staff) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&staffModel.Staff{},
		&teamModel.Team{},
		&teamModel.TeamMember{},
	))

	staff := []staffModel.Staff{
		{Name: "Rina Das", Phone: "01700000001", Role: "staff", Active: true},
		{Name: "Omar Ali", Phone: "01700000002", Role: "staff", Active: true},
		{Name: "Meera Sen", Phone: "01700000003", Role: "staff", Active: true},
	}
	for i := range staff {
		require.NoError(t, db.Create(&staff[i]).Error)
	}

	return db, staff
}

func TestCreateTeamWithMembers(t *testing.T) {
	db, staff := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(teamTypes.CreateTeamRequest{
		Name:            "Night Crew",
		CrewCommanderID: staff[0].ID,
		StaffIDs:        []uint{staff[1].ID, staff[2].ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "Night Crew", created.Name)
	assert.Equal(t, staff[0].ID, created.CrewCommanderID)
	assert.Equal(t, staff[0].Name, created.CrewCommander.Name)
	require.Len(t, created.Members, 2)
	assert.Equal(t, staff[1].Name, created.Members[0].Staff.Name)
}

func TestCreateTeamUnknownCommander(t *testing.T) {
	db, staff := setupTestDB(t)
	service := NewService(db)

	_, err := service.Create(teamTypes.CreateTeamRequest{
		Name:            "Night Crew",
		CrewCommanderID: 9999,
		StaffIDs:        []uint{staff[1].ID},
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestCreateTeamRollsBackOnBadMember(t *testing.T) {
	db, staff := setupTestDB(t)
	service := NewService(db)

	_, err := service.Create(teamTypes.CreateTeamRequest{
		Name:            "Night Crew",
		CrewCommanderID: staff[0].ID,
		StaffIDs:        []uint{staff[1].ID, 9999},
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	// Neither the team nor the valid member row survives.
	var teamCount, memberCount int64
	require.NoError(t, db.Model(&teamModel.Team{}).Count(&teamCount).Error)
	require.NoError(t, db.Model(&teamModel.TeamMember{}).Count(&memberCount).Error)
	assert.Equal(t, int64(0), teamCount)
	assert.Equal(t, int64(0), memberCount)
}

func TestResolveCommander(t *testing.T) {
	db, staff := setupTestDB(t)
	service := NewService(db)

	created, err := service.Create(teamTypes.CreateTeamRequest{
		Name:            "Night Crew",
		CrewCommanderID: staff[0].ID,
		StaffIDs:        []uint{staff[1].ID},
	})
	require.NoError(t, err)

	commanderID, err := service.ResolveCommander(created.ID)
	require.NoError(t, err)
	assert.Equal(t, staff[0].ID, commanderID)

	_, err = service.ResolveCommander(9999)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}
