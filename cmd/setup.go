package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"menu-manager/core/config"
	"menu-manager/core/database"
	"menu-manager/core/logger"
	"menu-manager/feature/catalog"
	"menu-manager/feature/catalog/store"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is what every command needs before doing work.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// setup loads configuration, creates the logger and connects to the database.
func setup(migrate bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	if migrate {
		if err := store.Migrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		l.Info("Catalog schema migrated", zap.String("driver", cfg.Database.Driver))
	}

	return &env{cfg: cfg, logger: l, db: db}, nil
}

func (e *env) catalog() *catalog.Service {
	return catalog.NewService(e.db, e.logger)
}

// confirm prompts the user unless yes is set.
func confirm(yes bool) bool {
	if yes {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to apply these changes: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
