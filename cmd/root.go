package cmd

import (
	"fmt"
	"os"

	"moviesstore-backend/config"
	"moviesstore-backend/database"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moviesstore",
	Short: "Movies Store backend - location-based purchase trends",
	Long: `Movies Store backend aggregates e-commerce purchase records tagged with a
geographic location into per-movie, per-location popularity trends, and serves
the aggregated data to a map front end.

Run the API server with "serve", or run the batch aggregation over recent
orders with "aggregate".`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and opens the database. Shared by all commands.
func setup() (*config.Config, error) {
	cfg := config.LoadConfig()
	if err := database.InitDB(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
