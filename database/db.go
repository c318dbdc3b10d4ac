package database

import (
	"fmt"
	"os"

	"dispatch-backend/logger"
	"dispatch-backend/models/branch"
	"dispatch-backend/models/client"
	"dispatch-backend/models/log"
	"dispatch-backend/models/notice"
	"dispatch-backend/models/request"
	"dispatch-backend/models/servicetype"
	"dispatch-backend/models/sos"
	"dispatch-backend/models/staff"
	"dispatch-backend/models/team"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency stages
func autoMigrate() error {
	// Stage 1: models without foreign keys
	stage1Models := []interface{}{
		&client.Client{},
		&staff.Staff{},
		&servicetype.ServiceType{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&branch.Branch{},
		&team.Team{},
		&team.TeamMember{},
		&servicetype.ServiceCharge{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: requests and remaining models
	remainingModels := []interface{}{
		&request.Request{},
		&notice.Notice{},
		&sos.SOS{},
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Branch indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_branches_client_id ON branches(client_id)").Error; err != nil {
		return fmt.Errorf("failed to create branch client_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_branches_email ON branches(email)").Error; err != nil {
		return fmt.Errorf("failed to create branch email index: %w", err)
	}

	// Request indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_branch_id ON requests(branch_id)").Error; err != nil {
		return fmt.Errorf("failed to create request branch_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_status ON requests(status)").Error; err != nil {
		return fmt.Errorf("failed to create request status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_my_status ON requests(my_status)").Error; err != nil {
		return fmt.Errorf("failed to create request my_status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_pickup_date ON requests(pickup_date)").Error; err != nil {
		return fmt.Errorf("failed to create request pickup_date index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_requests_created_at ON requests(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create request created_at index: %w", err)
	}

	// Team member indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_staff_id ON team_members(staff_id)").Error; err != nil {
		return fmt.Errorf("failed to create team_member staff_id index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_method ON logs(method)").Error; err != nil {
		return fmt.Errorf("failed to create log method index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	// Define constraints with their names for checking existence
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_branches_client",
			sql: `ALTER TABLE branches ADD CONSTRAINT fk_branches_client
				  FOREIGN KEY (client_id) REFERENCES clients(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_requests_branch",
			sql: `ALTER TABLE requests ADD CONSTRAINT fk_requests_branch
				  FOREIGN KEY (branch_id) REFERENCES branches(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_requests_service_type",
			sql: `ALTER TABLE requests ADD CONSTRAINT fk_requests_service_type
				  FOREIGN KEY (service_type_id) REFERENCES service_types(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_team_members_team",
			sql: `ALTER TABLE team_members ADD CONSTRAINT fk_team_members_team
				  FOREIGN KEY (team_id) REFERENCES teams(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_team_members_staff",
			sql: `ALTER TABLE team_members ADD CONSTRAINT fk_team_members_staff
				  FOREIGN KEY (staff_id) REFERENCES staff(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
	}

	for _, constraint := range constraints {
		// Check if constraint already exists
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
