package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	"dispatch-backend/services/dispatch"
	"dispatch-backend/types"
	requestTypes "dispatch-backend/types/request"
	"dispatch-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestController handles dispatch-request HTTP requests
type RequestController struct {
	DB       *gorm.DB
	Requests *dispatch.RequestStore
	Logger   *logger.AsyncLogger
}

// NewRequestController creates a new request controller
func NewRequestController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *RequestController {
	return &RequestController{
		DB:       db,
		Requests: dispatch.NewRequestStore(db),
		Logger:   asyncLogger,
	}
}

// Store creates a new dispatch request
func (rc *RequestController) Store(c *fiber.Ctx) error {
	var req requestTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	// Non-admin callers always create under their own branch.
	if req.BranchID == 0 || !principal.IsAdmin() {
		req.BranchID = principal.BranchID
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	record, err := rc.Requests.Create(req)
	if err != nil {
		if errors.Is(err, dispatch.ErrBranchNotFound) ||
			errors.Is(err, dispatch.ErrServiceTypeNotFound) ||
			errors.Is(err, dispatch.ErrTeamNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		logger.Error("Failed to create request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save request",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Request created successfully",
		Data:    record,
	})
}

// Index lists requests matching the optional filter conjunction
func (rc *RequestController) Index(c *fiber.Ctx) error {
	filters := requestTypes.ListFilters{
		Status: c.Query("status"),
	}

	// Presence check, not truthiness: myStatus=0 is a real filter.
	if raw := c.Query("myStatus"); raw != "" {
		myStatus, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "myStatus must be an integer",
			})
		}
		filters.MyStatus = &myStatus
	}

	if raw := c.Query("branchId"); raw != "" {
		branchID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "branchId must be an integer",
			})
		}
		id := uint(branchID)
		filters.BranchID = &id
	}

	if raw := c.Query("pickupDate"); raw != "" {
		pickupDate, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "pickupDate must be formatted as YYYY-MM-DD",
			})
		}
		filters.PickupDate = &pickupDate
	}

	records, err := rc.Requests.List(filters)
	if err != nil {
		logger.Error("Failed to list requests", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list requests",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Requests retrieved successfully",
		Data:    records,
	})
}

// Show returns a single request by id
func (rc *RequestController) Show(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	record, err := rc.Requests.Get(id)
	if err != nil {
		if errors.Is(err, dispatch.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Request not found",
			})
		}
		logger.Error("Failed to load request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Request retrieved successfully",
		Data:    record,
	})
}

// Patch applies an allow-listed partial update to a request. Unknown body
// keys are rejected instead of being silently dropped.
func (rc *RequestController) Patch(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var patch requestTypes.PatchRequest
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
	}

	if err := patch.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	record, err := rc.Requests.Patch(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrRequestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Request not found",
			})
		case errors.Is(err, dispatch.ErrTeamNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		case errors.Is(err, dispatch.ErrEmptyPatch):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		logger.Error("Failed to patch request", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update request",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Request updated successfully",
		Data:    record,
	})
}
