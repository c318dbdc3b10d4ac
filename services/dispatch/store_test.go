package dispatch

import (
	"testing"
	"time"

	branchModel "dispatch-backend/models/branch"
	clientModel "dispatch-backend/models/client"
	requestModel "dispatch-backend/models/request"
	servicetypeModel "dispatch-backend/models/servicetype"
	staffModel "dispatch-backend/models/staff"
	teamModel "dispatch-backend/models/team"
	requestTypes "dispatch-backend/types/request"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type fixtures struct {
	client      clientModel.Client
	branch      branchModel.Branch
	otherBranch branchModel.Branch
	serviceType servicetypeModel.ServiceType
	commander   staffModel.Staff
	team        teamModel.Team
}

func setupTestDB(t *testing.T) (*gorm.DB, fixtures) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&clientModel.Client{},
		&staffModel.Staff{},
		&servicetypeModel.ServiceType{},
		&branchModel.Branch{},
		&teamModel.Team{},
		&teamModel.TeamMember{},
		&requestModel.Request{},
	))

	f := fixtures{}

	f.client = clientModel.Client{Name: "Acme Retail"}
	require.NoError(t, db.Create(&f.client).Error)

	f.branch = branchModel.Branch{
		ClientID:     f.client.ID,
		Name:         "Downtown",
		Email:        "downtown@acme.test",
		PasswordHash: "x",
		Role:         "branch",
	}
	require.NoError(t, db.Create(&f.branch).Error)

	f.otherBranch = branchModel.Branch{
		ClientID:     f.client.ID,
		Name:         "Uptown",
		Email:        "uptown@acme.test",
		PasswordHash: "x",
		Role:         "branch",
	}
	require.NoError(t, db.Create(&f.otherBranch).Error)

	f.serviceType = servicetypeModel.ServiceType{
		Name:       "same-day",
		BaseCharge: decimal.NewFromInt(50),
		Active:     true,
	}
	require.NoError(t, db.Create(&f.serviceType).Error)

	f.commander = staffModel.Staff{Name: "Rina Das", Phone: "01700000001", Role: "staff", Active: true}
	require.NoError(t, db.Create(&f.commander).Error)

	f.team = teamModel.Team{Name: "Night Crew", CrewCommanderID: f.commander.ID}
	require.NoError(t, db.Create(&f.team).Error)

	return db, f
}

func createInput(f fixtures) requestTypes.CreateRequest {
	price := decimal.NewFromInt(100)
	return requestTypes.CreateRequest{
		BranchID:         f.branch.ID,
		ServiceTypeID:    f.serviceType.ID,
		PickupLocation:   "Warehouse 4",
		DeliveryLocation: "12 Harbor Rd",
		PickupDate:       time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Price:            &price,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	record, err := store.Create(createInput(f))
	require.NoError(t, err)

	assert.Equal(t, requestModel.StatusPending.String(), record.Status)
	assert.Equal(t, requestModel.CodePending, record.MyStatus)
	assert.Equal(t, requestModel.PriorityMedium, record.Priority)
	assert.NotEmpty(t, record.TrackingCode)
	assert.True(t, decimal.NewFromInt(100).Equal(record.Price))
	assert.Nil(t, record.TeamID)
	assert.Nil(t, record.StaffID)

	// Denormalized names come from the joined rows.
	require.NotNil(t, record.BranchName)
	assert.Equal(t, "Downtown", *record.BranchName)
	require.NotNil(t, record.ClientName)
	assert.Equal(t, "Acme Retail", *record.ClientName)
	require.NotNil(t, record.ServiceTypeName)
	assert.Equal(t, "same-day", *record.ServiceTypeName)
}

func TestCreateRejectsUnknownBranch(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	input := createInput(f)
	input.BranchID = 9999

	_, err := store.Create(input)
	assert.ErrorIs(t, err, ErrBranchNotFound)

	var count int64
	require.NoError(t, db.Model(&requestModel.Request{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "failed create must not leave a row behind")
}

func TestCreateRejectsUnknownServiceType(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	input := createInput(f)
	input.ServiceTypeID = 9999

	_, err := store.Create(input)
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestCreateWithTeamDerivesStaffAndStatus(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	input := createInput(f)
	input.TeamID = &f.team.ID

	record, err := store.Create(input)
	require.NoError(t, err)

	require.NotNil(t, record.TeamID)
	assert.Equal(t, f.team.ID, *record.TeamID)
	require.NotNil(t, record.StaffID)
	assert.Equal(t, f.commander.ID, *record.StaffID)
	assert.Equal(t, requestModel.StatusAssigned.String(), record.Status)
	assert.Equal(t, requestModel.CodeAssigned, record.MyStatus)
}

func TestCreateWithUnknownTeam(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	missing := uint(9999)
	input := createInput(f)
	input.TeamID = &missing

	_, err := store.Create(input)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestListFiltersMyStatusZero(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	pending, err := store.Create(createInput(f))
	require.NoError(t, err)

	completedInput := createInput(f)
	completedCode := requestModel.CodeCompleted
	completedInput.MyStatus = &completedCode
	_, err = store.Create(completedInput)
	require.NoError(t, err)

	// Zero is a real filter value, not "unset".
	zero := 0
	records, err := store.List(requestTypes.ListFilters{MyStatus: &zero})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, pending.ID, records[0].ID)

	// And without the filter both rows come back.
	records, err = store.List(requestTypes.ListFilters{})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestListFiltersBranchAndStatus(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	_, err := store.Create(createInput(f))
	require.NoError(t, err)

	otherInput := createInput(f)
	otherInput.BranchID = f.otherBranch.ID
	other, err := store.Create(otherInput)
	require.NoError(t, err)

	records, err := store.List(requestTypes.ListFilters{BranchID: &f.otherBranch.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, other.ID, records[0].ID)

	records, err = store.List(requestTypes.ListFilters{Status: requestModel.StatusCompleted.String()})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListPickupDateMatchesWholeDay(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	morning := createInput(f)
	morning.PickupDate = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	_, err := store.Create(morning)
	require.NoError(t, err)

	evening := createInput(f)
	evening.PickupDate = time.Date(2026, 3, 10, 22, 45, 0, 0, time.UTC)
	_, err = store.Create(evening)
	require.NoError(t, err)

	nextDay := createInput(f)
	nextDay.PickupDate = time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	_, err = store.Create(nextDay)
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	records, err := store.List(requestTypes.ListFilters{PickupDate: &day})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGetUnknownRequest(t *testing.T) {
	db, _ := setupTestDB(t)
	store := NewRequestStore(db)

	_, err := store.Get(42)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestPatchUnknownRequestMutatesNothing(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	existing, err := store.Create(createInput(f))
	require.NoError(t, err)

	location := "Pier 9"
	_, err = store.Patch(existing.ID+100, requestTypes.PatchRequest{PickupLocation: &location})
	assert.ErrorIs(t, err, ErrRequestNotFound)

	unchanged, err := store.Get(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.PickupLocation, unchanged.PickupLocation)
}

func TestPatchEmptyBody(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	existing, err := store.Create(createInput(f))
	require.NoError(t, err)

	_, err = store.Patch(existing.ID, requestTypes.PatchRequest{})
	assert.ErrorIs(t, err, ErrEmptyPatch)
}

func TestPatchUpdatesSubsetOnly(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	existing, err := store.Create(createInput(f))
	require.NoError(t, err)

	status := requestModel.StatusInTransit.String()
	code := requestModel.CodeInTransit
	record, err := store.Patch(existing.ID, requestTypes.PatchRequest{
		Status:   &status,
		MyStatus: &code,
	})
	require.NoError(t, err)

	assert.Equal(t, requestModel.StatusInTransit.String(), record.Status)
	assert.Equal(t, requestModel.CodeInTransit, record.MyStatus)
	// Untouched fields survive.
	assert.Equal(t, existing.PickupLocation, record.PickupLocation)
	assert.True(t, existing.Price.Equal(record.Price))
}

func TestPatchTeamDerivesStaff(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	existing, err := store.Create(createInput(f))
	require.NoError(t, err)
	require.Nil(t, existing.StaffID)

	record, err := store.Patch(existing.ID, requestTypes.PatchRequest{TeamID: &f.team.ID})
	require.NoError(t, err)

	require.NotNil(t, record.TeamID)
	assert.Equal(t, f.team.ID, *record.TeamID)
	require.NotNil(t, record.StaffID)
	assert.Equal(t, f.commander.ID, *record.StaffID)
}

func TestPatchUnknownTeamMutatesNothing(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	existing, err := store.Create(createInput(f))
	require.NoError(t, err)

	missing := uint(9999)
	location := "Pier 9"
	_, err = store.Patch(existing.ID, requestTypes.PatchRequest{
		PickupLocation: &location,
		TeamID:         &missing,
	})
	assert.ErrorIs(t, err, ErrTeamNotFound)

	// The failed team lookup rolls back the location change too.
	unchanged, err := store.Get(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.PickupLocation, unchanged.PickupLocation)
}
