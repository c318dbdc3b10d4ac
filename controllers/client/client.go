package client

import (
	"errors"
	"strconv"

	"dispatch-backend/logger"
	clientModel "dispatch-backend/models/client"
	"dispatch-backend/types"
	clientTypes "dispatch-backend/types/client"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClientController handles client CRUD
type ClientController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewClientController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ClientController {
	return &ClientController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a client
func (cc *ClientController) Store(c *fiber.Ctx) error {
	var req clientTypes.StoreClientRequest
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

	client := clientModel.Client{Name: req.Name}
	if req.ContactName != "" {
		client.ContactName = &req.ContactName
	}
	if req.ContactPhone != "" {
		client.ContactPhone = &req.ContactPhone
	}
	if req.Email != "" {
		client.Email = &req.Email
	}
	if req.Address != "" {
		client.Address = &req.Address
	}

	if err := cc.DB.Create(&client).Error; err != nil {
		logger.Error("Failed to create client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save client",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Client created successfully",
		Data:    client,
	})
}

// Index lists clients
func (cc *ClientController) Index(c *fiber.Ctx) error {
	var clients []clientModel.Client
	if err := cc.DB.Order("created_at DESC").Find(&clients).Error; err != nil {
		logger.Error("Failed to list clients", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list clients",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Clients retrieved successfully",
		Data:    clients,
	})
}

// Update applies a partial update to a client
func (cc *ClientController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var req clientTypes.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var client clientModel.Client
	if err := cc.DB.First(&client, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Client not found",
			})
		}
		logger.Error("Failed to find client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactName != nil {
		client.ContactName = req.ContactName
	}
	if req.ContactPhone != nil {
		client.ContactPhone = req.ContactPhone
	}
	if req.Email != nil {
		client.Email = req.Email
	}
	if req.Address != nil {
		client.Address = req.Address
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		logger.Error("Failed to update client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update client",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client updated successfully",
		Data:    client,
	})
}
