package cmd

import (
	"moviesstore-backend/database"
	"moviesstore-backend/services"

	"github.com/spf13/cobra"
)

var exportFile string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all trend rows as a map marker JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		if exportFile == "" {
			exportFile = cfg.ExportFile
		}

		store := services.NewStore(database.GetDB())
		exportService := services.NewExportService(store)
		_, err = exportService.Export(exportFile)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFile, "file", "", "export destination (default from config)")
	rootCmd.AddCommand(exportCmd)
}
