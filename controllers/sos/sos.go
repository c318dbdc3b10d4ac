package sos

import (
	"errors"
	"strconv"

	"dispatch-backend/logger"
	sosModel "dispatch-backend/models/sos"
	staffModel "dispatch-backend/models/staff"
	"dispatch-backend/types"
	sosTypes "dispatch-backend/types/sos"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SOSController handles emergency alerts
type SOSController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewSOSController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *SOSController {
	return &SOSController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store raises an alert
func (sc *SOSController) Store(c *fiber.Ctx) error {
	var req sosTypes.StoreSOSRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var staff staffModel.Staff
	if err := sc.DB.First(&staff, req.StaffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "staff not found",
			})
		}
		logger.Error("Failed to look up staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	alert := sosModel.SOS{
		StaffID:   staff.ID,
		RequestID: req.RequestID,
		Message:   req.Message,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	if err := sc.DB.Create(&alert).Error; err != nil {
		logger.Error("Failed to create SOS alert", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save SOS alert",
		})
	}

	logger.Warning("SOS alert raised by staff " + strconv.FormatUint(uint64(staff.ID), 10))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "SOS alert created successfully",
		Data:    alert,
	})
}

// Index lists alerts, unresolved first
func (sc *SOSController) Index(c *fiber.Ctx) error {
	var alerts []sosModel.SOS
	if err := sc.DB.Order("resolved ASC, created_at DESC").Find(&alerts).Error; err != nil {
		logger.Error("Failed to list SOS alerts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list SOS alerts",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "SOS alerts retrieved successfully",
		Data:    alerts,
	})
}

// Resolve marks an alert as handled
func (sc *SOSController) Resolve(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var alert sosModel.SOS
	if err := sc.DB.First(&alert, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "SOS alert not found",
			})
		}
		logger.Error("Failed to find SOS alert", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	alert.Resolved = true
	if err := sc.DB.Save(&alert).Error; err != nil {
		logger.Error("Failed to resolve SOS alert", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to resolve SOS alert",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "SOS alert resolved successfully",
		Data:    alert,
	})
}
