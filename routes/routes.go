package routes

import (
	"dispatch-backend/constants"
	"dispatch-backend/controllers/auth"
	"dispatch-backend/controllers/branch"
	"dispatch-backend/controllers/client"
	"dispatch-backend/controllers/notice"
	"dispatch-backend/controllers/request"
	"dispatch-backend/controllers/servicetype"
	"dispatch-backend/controllers/sos"
	"dispatch-backend/controllers/staff"
	"dispatch-backend/controllers/summary"
	"dispatch-backend/controllers/team"
	"dispatch-backend/logger"
	"dispatch-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	authController := auth.NewAuthController(db, asyncLogger)
	requestController := request.NewRequestController(db, asyncLogger)
	summaryController := summary.NewSummaryController(db, asyncLogger)
	teamController := team.NewTeamController(db, asyncLogger)
	branchController := branch.NewBranchController(db, asyncLogger)
	clientController := client.NewClientController(db, asyncLogger)
	staffController := staff.NewStaffController(db, asyncLogger)
	noticeController := notice.NewNoticeController(db, asyncLogger)
	sosController := sos.NewSOSController(db, asyncLogger)
	serviceTypeController := servicetype.NewServiceTypeController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "dispatch-backend",
			"status":  "ok",
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/login", authController.Login)

	/*=============================================================================
	| Authenticated Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuthentication())
	authGroup.Get("/profile", authController.Profile)

	/*=============================================================================
	| Dispatch Request Routes
	===============================================================================*/
	requestGroup := api.Group("/requests").Use(middleware.RequireAuthentication())
	requestGroup.Post("/", requestController.Store)
	requestGroup.Get("/", requestController.Index)
	requestGroup.Get("/:id", requestController.Show)
	requestGroup.Patch("/:id", requestController.Patch)

	/*=============================================================================
	| Summary Routes
	===============================================================================*/
	runGroup := api.Group("/runs").Use(middleware.RequireAuthentication())
	runGroup.Get("/summaries", summaryController.Index)

	/*=============================================================================
	| Team Routes
	===============================================================================*/
	teamGroup := api.Group("/teams").Use(middleware.RequireAuthentication())
	teamGroup.Get("/", teamController.Index)
	teamGroup.Post("/", middleware.RequireRoles(constants.RoleAdmin), teamController.Store)

	/*=============================================================================
	| Branch, Client and Staff Routes (admin managed)
	===============================================================================*/
	branchGroup := api.Group("/branches").Use(middleware.RequireAuthentication())
	branchGroup.Get("/", branchController.Index)
	branchGroup.Post("/", middleware.RequireRoles(constants.RoleAdmin), branchController.Store)
	branchGroup.Patch("/:id", middleware.RequireRoles(constants.RoleAdmin), branchController.Update)

	clientGroup := api.Group("/clients").Use(middleware.IsAuthenticated(constants.AdminRoles))
	clientGroup.Get("/", clientController.Index)
	clientGroup.Post("/", clientController.Store)
	clientGroup.Patch("/:id", clientController.Update)

	staffGroup := api.Group("/staff").Use(middleware.RequireAuthentication())
	staffGroup.Get("/", staffController.Index)
	staffGroup.Post("/", middleware.RequireRoles(constants.RoleAdmin), staffController.Store)
	staffGroup.Patch("/:id", middleware.RequireRoles(constants.RoleAdmin), staffController.Update)

	/*=============================================================================
	| Notice and SOS Routes
	===============================================================================*/
	noticeGroup := api.Group("/notices").Use(middleware.RequireAuthentication())
	noticeGroup.Get("/", noticeController.Index)
	noticeGroup.Post("/", middleware.RequireRoles(constants.RoleAdmin), noticeController.Store)
	noticeGroup.Patch("/:id", middleware.RequireRoles(constants.RoleAdmin), noticeController.Update)
	noticeGroup.Delete("/:id", middleware.RequireRoles(constants.RoleAdmin), noticeController.Destroy)

	sosGroup := api.Group("/sos").Use(middleware.RequireAuthentication())
	sosGroup.Get("/", sosController.Index)
	sosGroup.Post("/", sosController.Store)
	sosGroup.Patch("/:id/resolve", middleware.RequireRoles(constants.RoleAdmin), sosController.Resolve)

	/*=============================================================================
	| Service Type and Charge Routes
	===============================================================================*/
	serviceGroup := api.Group("/service-types").Use(middleware.RequireAuthentication())
	serviceGroup.Get("/", serviceTypeController.Index)
	serviceGroup.Post("/", middleware.RequireRoles(constants.RoleAdmin), serviceTypeController.Store)
	serviceGroup.Patch("/:id", middleware.RequireRoles(constants.RoleAdmin), serviceTypeController.Update)

	chargeGroup := api.Group("/service-charges").Use(middleware.RequireAuthentication())
	chargeGroup.Get("/", serviceTypeController.IndexCharges)
	chargeGroup.Post("/", middleware.RequireRoles(constants.RoleAdmin), serviceTypeController.StoreCharge)
	chargeGroup.Delete("/:id", middleware.RequireRoles(constants.RoleAdmin), serviceTypeController.DestroyCharge)
}
