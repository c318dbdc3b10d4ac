package summary

import (
	"strconv"

	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	"dispatch-backend/services/dispatch"
	"dispatch-backend/types"
	summaryTypes "dispatch-backend/types/summary"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SummaryController exposes the daily run summaries
type SummaryController struct {
	DB       *gorm.DB
	Requests *dispatch.RequestStore
	Logger   *logger.AsyncLogger
}

func NewSummaryController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *SummaryController {
	return &SummaryController{
		DB:       db,
		Requests: dispatch.NewRequestStore(db),
		Logger:   asyncLogger,
	}
}

func parseIntQuery(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func parseUintQuery(c *fiber.Ctx, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	id := uint(value)
	return &id, nil
}

// Index returns per-day run counts and price sums for the caller's scope.
// Non-admin callers are pinned to their own branch regardless of the
// branchId filter they send.
func (sc *SummaryController) Index(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	var filters summaryTypes.Filters
	var err error

	if filters.Year, err = parseIntQuery(c, "year"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "year must be an integer",
		})
	}
	if filters.Month, err = parseIntQuery(c, "month"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "month must be an integer",
		})
	}
	if filters.Month != nil && (*filters.Month < 1 || *filters.Month > 12) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "month must be between 1 and 12",
		})
	}
	if filters.ClientID, err = parseUintQuery(c, "clientId"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "clientId must be an integer",
		})
	}
	if filters.BranchID, err = parseUintQuery(c, "branchId"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "branchId must be an integer",
		})
	}

	summaries, err := sc.Requests.Summarize(principal.BranchID, principal.IsAdmin(), filters)
	if err != nil {
		logger.Error("Failed to summarize runs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to summarize runs",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Run summaries retrieved successfully",
		Data:    summaries,
	})
}
