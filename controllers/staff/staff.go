package staff

import (
	"errors"
	"strconv"

	"dispatch-backend/constants"
	"dispatch-backend/logger"
	staffModel "dispatch-backend/models/staff"
	"dispatch-backend/types"
	staffTypes "dispatch-backend/types/staff"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// StaffController handles staff CRUD
type StaffController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewStaffController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *StaffController {
	return &StaffController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a staff member
func (sc *StaffController) Store(c *fiber.Ctx) error {
	var req staffTypes.StoreStaffRequest
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

	role := req.Role
	if role == "" {
		role = constants.RoleStaff
	}

	staff := staffModel.Staff{
		Name:   req.Name,
		Phone:  req.Phone,
		Role:   role,
		Active: true,
	}
	if req.Email != "" {
		staff.Email = &req.Email
	}

	if err := sc.DB.Create(&staff).Error; err != nil {
		logger.Error("Failed to create staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save staff",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Staff created successfully",
		Data:    staff,
	})
}

// Index lists staff members
func (sc *StaffController) Index(c *fiber.Ctx) error {
	var members []staffModel.Staff
	if err := sc.DB.Order("created_at DESC").Find(&members).Error; err != nil {
		logger.Error("Failed to list staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list staff",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Staff retrieved successfully",
		Data:    members,
	})
}

// Update applies a partial update to a staff member
func (sc *StaffController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var req staffTypes.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var staff staffModel.Staff
	if err := sc.DB.First(&staff, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Staff not found",
			})
		}
		logger.Error("Failed to find staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Email != nil {
		staff.Email = req.Email
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		logger.Error("Failed to update staff", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update staff",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Staff updated successfully",
		Data:    staff,
	})
}
