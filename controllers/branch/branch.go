package branch

import (
	"errors"
	"fmt"
	"strconv"

	"dispatch-backend/constants"
	"dispatch-backend/logger"
	branchModel "dispatch-backend/models/branch"
	clientModel "dispatch-backend/models/client"
	"dispatch-backend/types"
	branchTypes "dispatch-backend/types/branch"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BranchController handles branch CRUD
type BranchController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewBranchController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BranchController {
	return &BranchController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a branch under an existing client
func (bc *BranchController) Store(c *fiber.Ctx) error {
	var req branchTypes.StoreBranchRequest
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

	var client clientModel.Client
	if err := bc.DB.First(&client, req.ClientID).Error; err != nil {
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

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	branch := branchModel.Branch{
		ClientID:     client.ID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         constants.RoleBranch,
	}
	if req.Phone != "" {
		branch.Phone = &req.Phone
	}
	if req.Location != "" {
		branch.Location = &req.Location
	}

	if err := bc.DB.Create(&branch).Error; err != nil {
		logger.Error("Failed to create branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save branch",
		})
	}

	logger.Success(fmt.Sprintf("Branch created successfully with ID: %d", branch.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Branch created successfully",
		Data:    branch,
	})
}

// Index lists branches with their clients preloaded
func (bc *BranchController) Index(c *fiber.Ctx) error {
	var branches []branchModel.Branch
	if err := bc.DB.Preload("Client").Order("created_at DESC").Find(&branches).Error; err != nil {
		logger.Error("Failed to list branches", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list branches",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branches retrieved successfully",
		Data:    branches,
	})
}

// Update applies a partial update to a branch
func (bc *BranchController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var req branchTypes.UpdateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var branch branchModel.Branch
	if err := bc.DB.First(&branch, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Branch not found",
			})
		}
		logger.Error("Failed to find branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Phone != nil {
		branch.Phone = req.Phone
	}
	if req.Location != nil {
		branch.Location = req.Location
	}

	if err := bc.DB.Save(&branch).Error; err != nil {
		logger.Error("Failed to update branch", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update branch",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Branch updated successfully",
		Data:    branch,
	})
}
