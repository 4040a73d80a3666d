// Package migrate manages the database schema from the command line.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"gatepass/internal/infrastructure/config"
	"gatepass/internal/infrastructure/database"
	"gatepass/internal/infrastructure/persistence/models"
	"gatepass/internal/shared/logger"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema and inspect its current state.`,
	}

	cmd.AddCommand(
		newUpCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the schema",
		RunE:  runUp,
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schema status",
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := database.Get().AutoMigrate(&models.GatePassRequestModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("schema migrated", "table", models.GatePassRequestModel{}.TableName())
	fmt.Println("schema is up to date")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	table := models.GatePassRequestModel{}.TableName()
	if database.Get().Migrator().HasTable(&models.GatePassRequestModel{}) {
		var count int64
		if err := database.Get().Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count rows: %w", err)
		}
		fmt.Printf("table %s exists (%d rows)\n", table, count)
		return nil
	}

	fmt.Printf("table %s is missing; run 'migrate up'\n", table)
	return nil
}
