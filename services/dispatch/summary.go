package dispatch

import (
	"sort"

	requestModel "dispatch-backend/models/request"
	summaryTypes "dispatch-backend/types/summary"

	"github.com/shopspring/decimal"
)

// Summarize groups matching requests by pickup calendar day and computes
// the per-day run counts and price sums. Completion is driven by the
// numeric progress code (my_status = 3); the string status stays advisory.
//
// Branch scoping is an authorization invariant: a non-admin caller always
// summarizes their own branch, and any branchId filter they supply is
// silently overridden.
func (s *RequestStore) Summarize(callerBranchID uint, isAdmin bool, filters summaryTypes.Filters) ([]summaryTypes.DailySummary, error) {
	branchID := filters.BranchID
	if !isAdmin {
		branchID = &callerBranchID
	}

	query := s.DB.Model(&requestModel.Request{})
	if branchID != nil {
		query = query.Where("requests.branch_id = ?", *branchID)
	}
	if filters.ClientID != nil {
		query = query.
			Joins("LEFT JOIN branches ON branches.id = requests.branch_id").
			Where("branches.client_id = ?", *filters.ClientID)
	}

	var reqs []requestModel.Request
	if err := query.Find(&reqs).Error; err != nil {
		return nil, err
	}

	buckets := map[string]*summaryTypes.DailySummary{}
	for _, req := range reqs {
		if filters.Year != nil && req.PickupDate.Year() != *filters.Year {
			continue
		}
		if filters.Month != nil && int(req.PickupDate.Month()) != *filters.Month {
			continue
		}

		day := req.PickupDate.Format("2006-01-02")
		bucket, ok := buckets[day]
		if !ok {
			bucket = &summaryTypes.DailySummary{
				Date:                 day,
				TotalAmount:          decimal.Zero,
				TotalAmountCompleted: decimal.Zero,
			}
			buckets[day] = bucket
		}

		bucket.TotalRuns++
		bucket.TotalAmount = bucket.TotalAmount.Add(req.Price)
		if req.MyStatus == requestModel.CodeCompleted {
			bucket.TotalRunsCompleted++
			bucket.TotalAmountCompleted = bucket.TotalAmountCompleted.Add(req.Price)
		}
	}

	summaries := make([]summaryTypes.DailySummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, *bucket)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	return summaries, nil
}
