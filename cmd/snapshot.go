package cmd

import (
	"fmt"

	"menu-manager/core/storage"
	"menu-manager/feature/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportRestaurant int
	asNewImport      bool
	dryRunImport     bool
	yesImport        bool
)

// snapshotCmd is the parent command for snapshot operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export restaurants to object storage and import them back",
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one restaurant, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, svc, err := snapshotService()
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("restaurant") {
			key, err := svc.Export(cmd.Context(), exportRestaurant)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			e.logger.Info("Exported restaurant", zap.Int("restaurant", exportRestaurant), zap.String("key", key))
			return nil
		}

		keys, err := svc.ExportAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import <key>",
	Short: "Reconcile the catalog with a stored snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, svc, err := snapshotService()
		if err != nil {
			return err
		}
		key := args[0]

		plan, err := svc.Import(cmd.Context(), key, snapshot.ImportOptions{AsNew: asNewImport, DryRun: true})
		if err != nil {
			return fmt.Errorf("failed to plan import: %w", err)
		}
		printJournal(e.logger, "Import plan", plan.Summary, plan.Actions)

		if dryRunImport {
			e.logger.Info("Dry-run mode: No changes were made.")
			return nil
		}
		if !confirm(yesImport) {
			e.logger.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		res, err := svc.Import(cmd.Context(), key, snapshot.ImportOptions{AsNew: asNewImport})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		id, _ := res.Data.ID.Value()
		e.logger.Info("Imported snapshot", zap.String("key", key), zap.Int("restaurant", id))
		return nil
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svc, err := snapshotService()
		if err != nil {
			return err
		}
		entries, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, entry := range entries {
			fmt.Printf("%s\t%d\t%s\n", entry.Key, entry.Size, entry.LastModified.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func snapshotService() (*env, *snapshot.Service, error) {
	e, err := setup(false)
	if err != nil {
		return nil, nil, err
	}
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	return e, snapshot.NewService(e.catalog(), client, e.cfg.Storage, e.logger), nil
}

func init() {
	snapshotExportCmd.Flags().IntVar(&exportRestaurant, "restaurant", 0, "Restaurant id to export (default: all)")
	snapshotImportCmd.Flags().BoolVar(&asNewImport, "as-new", false, "Insert the snapshot as a new restaurant")
	snapshotImportCmd.Flags().BoolVar(&dryRunImport, "dry-run", false, "Only print the plan")
	snapshotImportCmd.Flags().BoolVar(&yesImport, "yes", false, "Auto-confirm the changes (non-interactive)")

	snapshotCmd.AddCommand(snapshotExportCmd, snapshotImportCmd, snapshotListCmd)
	RootCmd.AddCommand(snapshotCmd)
}
