package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"menu-manager/core/reconcile"
	"menu-manager/feature/catalog/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunApply bool
	yesApply    bool
)

// applyCmd reconciles the catalog with restaurant trees read from a JSON file.
var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Reconcile restaurants from a JSON file",
	Long: `Reads one restaurant object, or an array of them, and makes the catalog match.

Restaurants without an id are created. Restaurants with an id are reconciled: children
missing from the file are deleted, children without an id are created and the rest are
updated in place.

The plan is always computed first in a rolled-back transaction and printed.

Examples:
  # Show what would change
  apply menus.json --dry-run

  # Apply with auto-confirm (non-interactive)
  apply menus.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&dryRunApply, "dry-run", false, "Only print the plan")
	applyCmd.Flags().BoolVar(&yesApply, "yes", false, "Auto-confirm the changes (non-interactive)")
	RootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	restaurants, err := readRestaurants(args[0])
	if err != nil {
		return err
	}

	e, err := setup(false)
	if err != nil {
		return err
	}
	svc := e.catalog()

	// Step 1: Plan (always runs)
	plan, err := svc.ApplyRestaurants(restaurants, reconcile.Options{DryRun: true})
	if err != nil {
		return fmt.Errorf("failed to plan: %w", err)
	}
	printJournal(e.logger, "Reconciliation plan", plan.Summary, plan.Actions)

	if dryRunApply {
		e.logger.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if plan.Summary.Total() == 0 {
		e.logger.Info("Catalog already matches the file.")
		return nil
	}

	// Step 2: Apply (if confirmed)
	if !confirm(yesApply) {
		e.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	res, err := svc.ApplyRestaurants(restaurants, reconcile.Options{})
	if err != nil {
		return fmt.Errorf("failed to apply: %w", err)
	}
	e.logger.Info("Successfully executed actions", zap.Int("count", res.Summary.Total()))
	return nil
}

// readRestaurants decodes either a single restaurant or an array of them.
func readRestaurants(path string) ([]models.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return decodeRestaurants(data)
}

func decodeRestaurants(data []byte) ([]models.Restaurant, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var list []models.Restaurant
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse restaurants: %w", err)
		}
		return list, nil
	}

	var one models.Restaurant
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("failed to parse restaurant: %w", err)
	}
	return []models.Restaurant{one}, nil
}
