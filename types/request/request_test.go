package request

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() CreateRequest {
	price := decimal.NewFromInt(100)
	return CreateRequest{
		BranchID:         1,
		ServiceTypeID:    2,
		PickupLocation:   "Warehouse 4",
		DeliveryLocation: "12 Harbor Rd",
		PickupDate:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Price:            &price,
	}
}

func TestCreateRequestValidate(t *testing.T) {
	req := validCreate()
	assert.NoError(t, req.Validate())

	req = validCreate()
	req.ServiceTypeID = 0
	assert.EqualError(t, req.Validate(), "serviceTypeId is required")

	req = validCreate()
	req.PickupLocation = ""
	assert.EqualError(t, req.Validate(), "pickupLocation is required")

	req = validCreate()
	req.DeliveryLocation = ""
	assert.EqualError(t, req.Validate(), "deliveryLocation is required")

	req = validCreate()
	req.PickupDate = time.Time{}
	assert.EqualError(t, req.Validate(), "pickupDate is required")

	req = validCreate()
	req.Price = nil
	assert.EqualError(t, req.Validate(), "price is required")

	req = validCreate()
	req.Priority = "urgent"
	assert.Error(t, req.Validate())

	req = validCreate()
	req.Priority = "high"
	assert.NoError(t, req.Validate())
}

func TestPatchRequestIsEmpty(t *testing.T) {
	var patch PatchRequest
	assert.True(t, patch.IsEmpty())

	location := "Pier 9"
	patch.PickupLocation = &location
	assert.False(t, patch.IsEmpty())

	code := 0
	patch = PatchRequest{MyStatus: &code}
	assert.False(t, patch.IsEmpty(), "explicit zero still counts as a field")
}

func TestPatchRequestValidatePriority(t *testing.T) {
	priority := "urgent"
	patch := PatchRequest{Priority: &priority}
	assert.Error(t, patch.Validate())

	priority = "low"
	assert.NoError(t, patch.Validate())
}

func TestPatchRequestDecodeRejectsUnknownKeys(t *testing.T) {
	body := []byte(`{"pickup_location": "Pier 9", "bogus_field": true}`)

	var patch PatchRequest
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	assert.Error(t, decoder.Decode(&patch))
}

func TestPatchRequestDecodeSnakeCaseKeys(t *testing.T) {
	body := []byte(`{"pickup_location": "Pier 9", "my_status": 0, "team_id": 5}`)

	var patch PatchRequest
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	require.NoError(t, decoder.Decode(&patch))

	require.NotNil(t, patch.PickupLocation)
	assert.Equal(t, "Pier 9", *patch.PickupLocation)
	require.NotNil(t, patch.MyStatus)
	assert.Equal(t, 0, *patch.MyStatus)
	require.NotNil(t, patch.TeamID)
	assert.Equal(t, uint(5), *patch.TeamID)

	// camelCase aliases are not part of the write contract.
	aliased := []byte(`{"pickupLocation": "Pier 9"}`)
	decoder = json.NewDecoder(bytes.NewReader(aliased))
	decoder.DisallowUnknownFields()
	assert.Error(t, decoder.Decode(&patch))
}
