package cmd

import (
	"fmt"

	"moviesstore-backend/database"
	"moviesstore-backend/services"

	"github.com/spf13/cobra"
)

var (
	aggregateDays       int
	aggregateForce      bool
	aggregateExportJSON bool
	aggregateExportFile string
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Aggregate recent orders into movie location trends",
	Long: `Scans orders in the trailing window that carry a geographic location, joins
them to their line items and folds the quantities into per-movie, per-location
trend rows. Existing rows are skipped unless --force merges the new counts in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("days") {
			aggregateDays = cfg.TrendWindowDays
		}
		if aggregateDays < 0 {
			return fmt.Errorf("--days must not be negative, got %d", aggregateDays)
		}
		if aggregateExportFile == "" {
			aggregateExportFile = cfg.ExportFile
		}

		store := services.NewStore(database.GetDB())
		aggregationService := services.NewAggregationService(store, cfg)

		report, err := aggregationService.Aggregate(aggregateDays, aggregateForce)
		if err != nil {
			return err
		}
		aggregationService.LogTopTrends(report)

		if aggregateExportJSON {
			exportService := services.NewExportService(store)
			if _, err := exportService.Export(aggregateExportFile); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	aggregateCmd.Flags().IntVar(&aggregateDays, "days", 30, "size of the order window in days")
	aggregateCmd.Flags().BoolVar(&aggregateForce, "force", false, "merge new counts into existing trend rows")
	aggregateCmd.Flags().BoolVar(&aggregateExportJSON, "export-json", false, "write the map marker export after aggregating")
	aggregateCmd.Flags().StringVar(&aggregateExportFile, "export-file", "", "marker export destination (default from config)")
	rootCmd.AddCommand(aggregateCmd)
}
