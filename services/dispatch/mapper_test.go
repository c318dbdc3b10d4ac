package dispatch

import (
	"encoding/json"
	"testing"
	"time"

	branchModel "dispatch-backend/models/branch"
	clientModel "dispatch-backend/models/client"
	requestModel "dispatch-backend/models/request"
	servicetypeModel "dispatch-backend/models/servicetype"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecordWithJoinedNames(t *testing.T) {
	req := requestModel.Request{
		ID:            7,
		TrackingCode:  "DSP-AAA111",
		BranchID:      2,
		ServiceTypeID: 3,
		Branch: branchModel.Branch{
			ID:   2,
			Name: "Downtown",
			Client: clientModel.Client{
				ID:   1,
				Name: "Acme Retail",
			},
		},
		ServiceType: servicetypeModel.ServiceType{
			ID:   3,
			Name: "same-day",
		},
		PickupLocation:   "Warehouse 4",
		DeliveryLocation: "12 Harbor Rd",
		PickupDate:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Priority:         requestModel.PriorityHigh,
		Status:           requestModel.StatusAssigned.String(),
		MyStatus:         requestModel.CodeAssigned,
		Price:            decimal.NewFromInt(100),
	}

	record := BuildRecord(req)

	assert.Equal(t, uint(7), record.ID)
	require.NotNil(t, record.BranchName)
	assert.Equal(t, "Downtown", *record.BranchName)
	require.NotNil(t, record.ClientName)
	assert.Equal(t, "Acme Retail", *record.ClientName)
	require.NotNil(t, record.ServiceTypeName)
	assert.Equal(t, "same-day", *record.ServiceTypeName)
}

func TestBuildRecordMissingJoins(t *testing.T) {
	req := requestModel.Request{
		ID:            8,
		BranchID:      2,
		ServiceTypeID: 3,
		Price:         decimal.NewFromInt(10),
	}

	record := BuildRecord(req)

	assert.Nil(t, record.BranchName)
	assert.Nil(t, record.ClientName)
	assert.Nil(t, record.ServiceTypeName)
}

func TestRecordTeamIDStaysSnakeCase(t *testing.T) {
	teamID := uint(5)
	req := requestModel.Request{
		ID:     9,
		TeamID: &teamID,
		Price:  decimal.NewFromInt(10),
	}

	payload, err := json.Marshal(BuildRecord(req))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &fields))

	assert.Contains(t, fields, "team_id")
	assert.NotContains(t, fields, "teamId")
	assert.Contains(t, fields, "branchId")
	assert.Contains(t, fields, "trackingCode")
}

func TestBuildRecordsPreservesOrder(t *testing.T) {
	reqs := []requestModel.Request{
		{ID: 3, Price: decimal.Zero},
		{ID: 1, Price: decimal.Zero},
		{ID: 2, Price: decimal.Zero},
	}

	records := BuildRecords(reqs)
	require.Len(t, records, 3)
	assert.Equal(t, uint(3), records[0].ID)
	assert.Equal(t, uint(1), records[1].ID)
	assert.Equal(t, uint(2), records[2].ID)
}
