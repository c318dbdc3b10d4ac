package dispatch

import (
	"errors"
	"fmt"

	"dispatch-backend/logger"
	branchModel "dispatch-backend/models/branch"
	requestModel "dispatch-backend/models/request"
	servicetypeModel "dispatch-backend/models/servicetype"
	teamModel "dispatch-backend/models/team"
	requestTypes "dispatch-backend/types/request"
	"dispatch-backend/utils"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// RequestStore owns the requests table. All multi-step writes run inside a
// transaction so a concurrent writer can never observe a half-applied
// request.
type RequestStore struct {
	DB *gorm.DB
}

func NewRequestStore(db *gorm.DB) *RequestStore {
	return &RequestStore{DB: db}
}

func preloadRequest(db *gorm.DB) *gorm.DB {
	return db.Preload("Branch").Preload("Branch.Client").Preload("ServiceType")
}

// warnNonCanonicalPair logs a data-integrity warning when a write leaves
// status and my_status out of their documented pairing. The write itself is
// accepted; callers own both fields.
func warnNonCanonicalPair(req requestModel.Request) {
	if !requestModel.IsCanonicalPair(req.Status, req.MyStatus) {
		logger.Warning(fmt.Sprintf(
			"request %d has non-canonical status pair: status=%q my_status=%d",
			req.ID, req.Status, req.MyStatus))
	}
}

// Create validates the referenced branch and service type, inserts the
// request with its defaults and returns the denormalized record. Attaching
// a team at creation derives staff from the team's crew commander and moves
// the request straight to assigned.
func (s *RequestStore) Create(input requestTypes.CreateRequest) (requestTypes.Record, error) {
	var created requestModel.Request

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var branch branchModel.Branch
		if err := tx.First(&branch, input.BranchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBranchNotFound
			}
			return err
		}

		var serviceType servicetypeModel.ServiceType
		if err := tx.First(&serviceType, input.ServiceTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceTypeNotFound
			}
			return err
		}

		priority := input.Priority
		if priority == "" {
			priority = requestModel.PriorityMedium
		}

		req := requestModel.Request{
			TrackingCode:     utils.GenerateTrackingCode(),
			BranchID:         branch.ID,
			ServiceTypeID:    serviceType.ID,
			PickupLocation:   input.PickupLocation,
			DeliveryLocation: input.DeliveryLocation,
			PickupDate:       input.PickupDate,
			Priority:         priority,
			Status:           requestModel.StatusPending.String(),
			MyStatus:         requestModel.CodePending,
			Price:            *input.Price,
			Latitude:         input.Latitude,
			Longitude:        input.Longitude,
		}
		if input.Description != "" {
			description := input.Description
			req.Description = &description
		}

		if input.TeamID != nil {
			var team teamModel.Team
			if err := tx.First(&team, *input.TeamID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTeamNotFound
				}
				return err
			}
			req.TeamID = &team.ID
			commanderID := team.CrewCommanderID
			req.StaffID = &commanderID
			req.Status = requestModel.StatusAssigned.String()
			req.MyStatus = requestModel.CodeAssigned
		}

		if input.MyStatus != nil {
			req.MyStatus = *input.MyStatus
		}

		if err := tx.Create(&req).Error; err != nil {
			logger.Error("Failed to create request", err)
			return err
		}

		// Reselect inside the transaction so the returned record matches
		// what was written.
		if err := preloadRequest(tx).First(&created, req.ID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return requestTypes.Record{}, err
	}

	warnNonCanonicalPair(created)
	logger.Success(fmt.Sprintf("Request created successfully with ID: %d", created.ID))
	return BuildRecord(created), nil
}

// List returns requests matching the filter conjunction, newest first, with
// branch, client and service type names joined in. MyStatus uses a presence
// check so filtering on zero still applies; PickupDate matches the whole
// calendar day, not the timestamp.
func (s *RequestStore) List(filters requestTypes.ListFilters) ([]requestTypes.Record, error) {
	query := preloadRequest(s.DB).Model(&requestModel.Request{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.MyStatus != nil {
		query = query.Where("my_status = ?", *filters.MyStatus)
	}
	if filters.BranchID != nil {
		query = query.Where("branch_id = ?", *filters.BranchID)
	}
	if filters.PickupDate != nil {
		day := now.With(*filters.PickupDate)
		query = query.Where("pickup_date BETWEEN ? AND ?", day.BeginningOfDay(), day.EndOfDay())
	}

	var reqs []requestModel.Request
	if err := query.Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}

	return BuildRecords(reqs), nil
}

// Get returns a single denormalized record.
func (s *RequestStore) Get(id uint) (requestTypes.Record, error) {
	var req requestModel.Request
	if err := preloadRequest(s.DB).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return requestTypes.Record{}, ErrRequestNotFound
		}
		return requestTypes.Record{}, err
	}
	return BuildRecord(req), nil
}

// Patch applies the supplied subset of fields to a request. A teamId patch
// additionally resolves the team's crew commander into staff_id as a
// store-level side effect. Update and reselect share one transaction.
func (s *RequestStore) Patch(id uint, patch requestTypes.PatchRequest) (requestTypes.Record, error) {
	if patch.IsEmpty() {
		return requestTypes.Record{}, ErrEmptyPatch
	}

	var updated requestModel.Request

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var req requestModel.Request
		if err := tx.First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if patch.PickupLocation != nil {
			updates["pickup_location"] = *patch.PickupLocation
		}
		if patch.DeliveryLocation != nil {
			updates["delivery_location"] = *patch.DeliveryLocation
		}
		if patch.PickupDate != nil {
			updates["pickup_date"] = *patch.PickupDate
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Priority != nil {
			updates["priority"] = *patch.Priority
		}
		if patch.Status != nil {
			updates["status"] = *patch.Status
		}
		if patch.MyStatus != nil {
			updates["my_status"] = *patch.MyStatus
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if patch.Latitude != nil {
			updates["latitude"] = *patch.Latitude
		}
		if patch.Longitude != nil {
			updates["longitude"] = *patch.Longitude
		}

		if patch.TeamID != nil {
			var team teamModel.Team
			if err := tx.First(&team, *patch.TeamID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTeamNotFound
				}
				return err
			}
			updates["team_id"] = team.ID
			updates["staff_id"] = team.CrewCommanderID
		}

		if err := tx.Model(&req).Updates(updates).Error; err != nil {
			logger.Error("Failed to update request", err)
			return err
		}

		if err := preloadRequest(tx).First(&updated, req.ID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return requestTypes.Record{}, err
	}

	warnNonCanonicalPair(updated)
	return BuildRecord(updated), nil
}
