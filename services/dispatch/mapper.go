package dispatch

import (
	requestModel "dispatch-backend/models/request"
	requestTypes "dispatch-backend/types/request"
)

// BuildRecord maps a stored request row to its API record. Joined names
// come from the preloaded associations and stay nil when the join found
// nothing. All names are camelCased except team_id, which the deployed
// clients consume snake_cased as-is.
func BuildRecord(req requestModel.Request) requestTypes.Record {
	record := requestTypes.Record{
		ID:               req.ID,
		TrackingCode:     req.TrackingCode,
		BranchID:         req.BranchID,
		ServiceTypeID:    req.ServiceTypeID,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		PickupDate:       req.PickupDate,
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           req.Status,
		MyStatus:         req.MyStatus,
		Price:            req.Price,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		TeamID:           req.TeamID,
		StaffID:          req.StaffID,
		CreatedAt:        req.CreatedAt,
		UpdatedAt:        req.UpdatedAt,
	}

	if req.Branch.ID != 0 {
		branchName := req.Branch.Name
		record.BranchName = &branchName
		if req.Branch.Client.ID != 0 {
			clientName := req.Branch.Client.Name
			record.ClientName = &clientName
		}
	}
	if req.ServiceType.ID != 0 {
		serviceTypeName := req.ServiceType.Name
		record.ServiceTypeName = &serviceTypeName
	}

	return record
}

// BuildRecords maps a slice of rows, preserving order.
func BuildRecords(reqs []requestModel.Request) []requestTypes.Record {
	records := make([]requestTypes.Record, 0, len(reqs))
	for _, req := range reqs {
		records = append(records, BuildRecord(req))
	}
	return records
}
