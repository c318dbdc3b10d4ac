package team

import (
	"errors"

	"dispatch-backend/logger"
	teamService "dispatch-backend/services/team"
	"dispatch-backend/types"
	teamTypes "dispatch-backend/types/team"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	DB      *gorm.DB
	Service *teamService.Service
	Logger  *logger.AsyncLogger
}

func NewTeamController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *TeamController {
	return &TeamController{
		DB:      db,
		Service: teamService.NewService(db),
		Logger:  asyncLogger,
	}
}

// Store creates a team together with its member list; the write is atomic.
func (tc *TeamController) Store(c *fiber.Ctx) error {
	var req teamTypes.CreateTeamRequest
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

	created, err := tc.Service.Create(req)
	if err != nil {
		if errors.Is(err, teamService.ErrStaffNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		logger.Error("Failed to create team", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to save team",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Team created successfully",
		Data:    created,
	})
}

// Index lists teams with commanders and members preloaded
func (tc *TeamController) Index(c *fiber.Ctx) error {
	teams, err := tc.Service.List()
	if err != nil {
		logger.Error("Failed to list teams", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to list teams",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Teams retrieved successfully",
		Data:    teams,
	})
}
