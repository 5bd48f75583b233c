package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"menu-manager/feature/catalog/models"
	"menu-manager/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema against the catalog models",
	Long:  `Compares every catalog table with its row model and reports missing columns and type mismatches. Outputs metrics by default or a detailed JSON file with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		jsonOutput, _ := cmd.Flags().GetBool("json")

		e, err := setup(false)
		if err != nil {
			return err
		}

		report, err := checks.CheckSchema(e.db, models.All())
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if jsonOutput {
			filename := fmt.Sprintf("integrity_schema_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			e.logger.Info("Detailed JSON report saved", zap.String("file", filename))
		}

		tables := make([]string, 0, len(report.Tables))
		for name := range report.Tables {
			tables = append(tables, name)
		}
		sort.Strings(tables)

		fmt.Println("\n=== Schema Integrity ===")
		fmt.Printf("Driver: %s\n", report.Driver)
		for _, name := range tables {
			tbl := report.Tables[name]
			fmt.Printf("%-14s %-8s missing=%d mismatched=%d\n", name, tbl.Status, len(tbl.MissingColumns), len(tbl.TypeMismatches))
		}
		for _, msg := range report.Errors {
			fmt.Printf("error: %s\n", msg)
		}
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		if !report.Matched {
			return fmt.Errorf("schema does not match the catalog models")
		}
		e.logger.Info("Schema integrity check passed", zap.Int("tables", len(tables)))
		return nil
	},
}

func init() {
	integrityCmd.Flags().Bool("json", false, "Save the detailed report to a JSON file")
	RootCmd.AddCommand(integrityCmd)
}
