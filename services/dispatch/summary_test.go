package dispatch

import (
	"testing"
	"time"

	requestModel "dispatch-backend/models/request"
	requestTypes "dispatch-backend/types/request"
	summaryTypes "dispatch-backend/types/summary"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSummaryData creates three requests:
//
//	2026-03-10: 100 (pending) and 200 (completed)
//	2026-03-11: 50 (completed)
func seedSummaryData(t *testing.T, store *RequestStore, f fixtures) {
	t.Helper()

	first := createInput(f)
	first.PickupDate = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := store.Create(first)
	require.NoError(t, err)

	second := createInput(f)
	second.PickupDate = time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(200)
	second.Price = &price
	completed := requestModel.CodeCompleted
	second.MyStatus = &completed
	_, err = store.Create(second)
	require.NoError(t, err)

	third := createInput(f)
	third.PickupDate = time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC)
	thirdPrice := decimal.NewFromInt(50)
	third.Price = &thirdPrice
	thirdCompleted := requestModel.CodeCompleted
	third.MyStatus = &thirdCompleted
	_, err = store.Create(third)
	require.NoError(t, err)
}

func TestSummarizeGroupsByPickupDay(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)
	seedSummaryData(t, store, f)

	summaries, err := store.Summarize(f.branch.ID, true, summaryTypes.Filters{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Sorted by date ascending.
	day1 := summaries[0]
	assert.Equal(t, "2026-03-10", day1.Date)
	assert.Equal(t, 2, day1.TotalRuns)
	assert.Equal(t, 1, day1.TotalRunsCompleted)
	assert.True(t, decimal.NewFromInt(300).Equal(day1.TotalAmount), "got %s", day1.TotalAmount)
	assert.True(t, decimal.NewFromInt(200).Equal(day1.TotalAmountCompleted), "got %s", day1.TotalAmountCompleted)

	day2 := summaries[1]
	assert.Equal(t, "2026-03-11", day2.Date)
	assert.Equal(t, 1, day2.TotalRuns)
	assert.Equal(t, 1, day2.TotalRunsCompleted)
	assert.True(t, decimal.NewFromInt(50).Equal(day2.TotalAmount))
	assert.True(t, decimal.NewFromInt(50).Equal(day2.TotalAmountCompleted))
}

func TestSummarizeCompletionFollowsProgressCode(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)

	// String status says completed but the progress code does not. The
	// aggregator must not count it as complete.
	input := createInput(f)
	input.PickupDate = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	record, err := store.Create(input)
	require.NoError(t, err)

	status := requestModel.StatusCompleted.String()
	_, err = store.Patch(record.ID, requestTypes.PatchRequest{Status: &status})
	require.NoError(t, err)

	summaries, err := store.Summarize(f.branch.ID, true, summaryTypes.Filters{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].TotalRuns)
	assert.Equal(t, 0, summaries[0].TotalRunsCompleted)
}

func TestSummarizeYearMonthFilter(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)
	seedSummaryData(t, store, f)

	other := createInput(f)
	other.PickupDate = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)
	_, err := store.Create(other)
	require.NoError(t, err)

	year := 2026
	month := 3
	summaries, err := store.Summarize(f.branch.ID, true, summaryTypes.Filters{Year: &year, Month: &month})
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	year = 2025
	summaries, err = store.Summarize(f.branch.ID, true, summaryTypes.Filters{Year: &year})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2025-12-01", summaries[0].Date)
}

func TestSummarizePinsNonAdminToOwnBranch(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)
	seedSummaryData(t, store, f)

	otherInput := createInput(f)
	otherInput.BranchID = f.otherBranch.ID
	otherInput.PickupDate = time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	_, err := store.Create(otherInput)
	require.NoError(t, err)

	// A non-admin asking for another branch still gets their own.
	summaries, err := store.Summarize(f.branch.ID, false, summaryTypes.Filters{BranchID: &f.otherBranch.ID})
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for _, summary := range summaries {
		assert.NotEqual(t, "2026-03-12", summary.Date)
	}

	// An admin with the same filter sees the other branch.
	summaries, err = store.Summarize(f.branch.ID, true, summaryTypes.Filters{BranchID: &f.otherBranch.ID})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "2026-03-12", summaries[0].Date)
}

func TestSummarizeClientFilter(t *testing.T) {
	db, f := setupTestDB(t)
	store := NewRequestStore(db)
	seedSummaryData(t, store, f)

	summaries, err := store.Summarize(f.branch.ID, true, summaryTypes.Filters{ClientID: &f.client.ID})
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	missing := uint(9999)
	summaries, err = store.Summarize(f.branch.ID, true, summaryTypes.Filters{ClientID: &missing})
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
