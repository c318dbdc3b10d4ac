package notice

import (
	"errors"
	"strconv"

	"dispatch-backend/logger"
	"dispatch-backend/middleware"
	noticeModel "dispatch-backend/models/notice"
	"dispatch-backend/types"
	noticeTypes "dispatch-backend/types/notice"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NoticeController handles notice CRUD
type NoticeController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewNoticeController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *NoticeController {
	return &NoticeController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store creates a notice
func (nc *NoticeController) Store(c *fiber.Ctx) error {
	var req noticeTypes.StoreNoticeRequest
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

	audience := req.Audience
	if audience == "" {
		audience = "all"
	}

	notice := noticeModel.Notice{
		Title:    req.Title,
		Body:     req.Body,
		Audience: audience,
	}
	if principal, ok := middleware.GetPrincipal(c); ok {
		notice.CreatedBy = principal.BranchName
	}

	if err := nc.DB.Create(&notice).Error; err != nil {
		logger.Error("Failed to create notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save notice",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Notice created successfully",
		Data:    notice,
	})
}

// Index lists notices, newest first
func (nc *NoticeController) Index(c *fiber.Ctx) error {
	var notices []noticeModel.Notice
	if err := nc.DB.Where("deleted_at IS NULL").Order("created_at DESC").Find(&notices).Error; err != nil {
		logger.Error("Failed to list notices", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list notices",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notices retrieved successfully",
		Data:    notices,
	})
}

// Update applies a partial update to a notice
func (nc *NoticeController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	var req noticeTypes.UpdateNoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var notice noticeModel.Notice
	if err := nc.DB.First(&notice, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Notice not found",
			})
		}
		logger.Error("Failed to find notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	if req.Title != nil {
		notice.Title = *req.Title
	}
	if req.Body != nil {
		notice.Body = *req.Body
	}
	if req.Audience != nil {
		notice.Audience = *req.Audience
	}

	if err := nc.DB.Save(&notice).Error; err != nil {
		logger.Error("Failed to update notice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update notice",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notice updated successfully",
		Data:    notice,
	})
}

// Destroy soft deletes a notice
func (nc *NoticeController) Destroy(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "id must be an integer",
		})
	}

	result := nc.DB.Model(&noticeModel.Notice{}).
		Where("id = ? AND deleted_at IS NULL", uint(id)).
		Update("deleted_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		logger.Error("Failed to delete notice", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete notice",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Notice not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notice deleted successfully",
	})
}
