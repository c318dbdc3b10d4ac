package servicetype

import (
	"errors"
	"strconv"

	"dispatch-backend/logger"
	clientModel "dispatch-backend/models/client"
	servicetypeModel "dispatch-backend/models/servicetype"
	"dispatch-backend/types"
	servicetypeTypes "dispatch-backend/types/servicetype"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceTypeController handles service types and per-client charges
type ServiceTypeController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewServiceTypeController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ServiceTypeController {
	return &ServiceTypeController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a service type
func (sc *ServiceTypeController) Store(c *fiber.Ctx) error {
	var req servicetypeTypes.StoreServiceTypeRequest
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

	serviceType := servicetypeModel.ServiceType{
		Name:       req.Name,
		BaseCharge: decimal.Zero,
		Active:     true,
	}
	if req.Description != "" {
		serviceType.Description = &req.Description
	}
	if req.BaseCharge != nil {
		serviceType.BaseCharge = *req.BaseCharge
	}

	if err := sc.DB.Create(&serviceType).Error; err != nil {
		logger.Error("Failed to create service type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save service type",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Service type created successfully",
		Data:    serviceType,
	})
}

// Index lists service types
func (sc *ServiceTypeController) Index(c *fiber.Ctx) error {
	var serviceTypes []servicetypeModel.ServiceType
	if err := sc.DB.Order("name ASC").Find(&serviceTypes).Error; err != nil {
		logger.Error("Failed to list service types", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list service types",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service types retrieved successfully",
		Data:    serviceTypes,
	})
}

// Update applies a partial update to a service type
func (sc *ServiceTypeController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var req servicetypeTypes.UpdateServiceTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var serviceType servicetypeModel.ServiceType
	if err := sc.DB.First(&serviceType, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service type not found",
			})
		}
		logger.Error("Failed to find service type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if req.Name != nil {
		serviceType.Name = *req.Name
	}
	if req.Description != nil {
		serviceType.Description = req.Description
	}
	if req.BaseCharge != nil {
		serviceType.BaseCharge = *req.BaseCharge
	}
	if req.Active != nil {
		serviceType.Active = *req.Active
	}

	if err := sc.DB.Save(&serviceType).Error; err != nil {
		logger.Error("Failed to update service type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update service type",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service type updated successfully",
		Data:    serviceType,
	})
}

// StoreCharge creates a per-client price override for a service type
func (sc *ServiceTypeController) StoreCharge(c *fiber.Ctx) error {
	var req servicetypeTypes.StoreServiceChargeRequest
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

	var serviceType servicetypeModel.ServiceType
	if err := sc.DB.First(&serviceType, req.ServiceTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "service type not found",
			})
		}
		logger.Error("Failed to look up service type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	var client clientModel.Client
	if err := sc.DB.First(&client, req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "client not found",
			})
		}
		logger.Error("Failed to look up client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	charge := servicetypeModel.ServiceCharge{
		ServiceTypeID: serviceType.ID,
		ClientID:      client.ID,
		Charge:        *req.Charge,
	}

	if err := sc.DB.Create(&charge).Error; err != nil {
		logger.Error("Failed to create service charge", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save service charge",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Service charge created successfully",
		Data:    charge,
	})
}

// IndexCharges lists the charges for one client
func (sc *ServiceTypeController) IndexCharges(c *fiber.Ctx) error {
	query := sc.DB.Preload("ServiceType")

	if raw := c.Query("clientId"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "clientId must be an integer",
			})
		}
		query = query.Where("client_id = ?", uint(clientID))
	}

	var charges []servicetypeModel.ServiceCharge
	if err := query.Find(&charges).Error; err != nil {
		logger.Error("Failed to list service charges", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list service charges",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service charges retrieved successfully",
		Data:    charges,
	})
}

// DestroyCharge removes a service charge
func (sc *ServiceTypeController) DestroyCharge(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	result := sc.DB.Delete(&servicetypeModel.ServiceCharge{}, uint(id))
	if result.Error != nil {
		logger.Error("Failed to delete service charge", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete service charge",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Service charge not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service charge deleted successfully",
	})
}
