package summary

import (
	"github.com/shopspring/decimal"
)

// Filters narrows the summary to a year, month, client or branch. BranchID
// is advisory only for admin principals; everyone else is pinned to their
// own branch by the aggregator.
type Filters struct {
	Year     *int
	Month    *int
	ClientID *uint
	BranchID *uint
}

// DailySummary is one aggregated row per pickup calendar day.
type DailySummary struct {
	Date                 string          `json:"date"`
	TotalRuns            int             `json:"totalRuns"`
	TotalRunsCompleted   int             `json:"totalRunsCompleted"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TotalAmountCompleted decimal.Decimal `json:"totalAmountCompleted"`
}
