package cmd

import (
	"log"

	"moviesstore-backend/database"
	"moviesstore-backend/handlers"
	"moviesstore-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		if err := database.LoadMovieData(cfg.MovieDataPath); err != nil {
			log.Printf("Catalog load skipped: %v", err)
		}

		store := services.NewStore(database.GetDB())
		aggregationService := services.NewAggregationService(store, cfg)
		exportService := services.NewExportService(store)
		orderService := services.NewOrderService(database.GetDB())

		trendHandler := handlers.NewTrendHandler(store, aggregationService, exportService, cfg)
		orderHandler := handlers.NewOrderHandler(orderService)
		movieHandler := handlers.NewMovieHandler(store)

		r := gin.Default()
		v1 := r.Group("/api/v1")
		{
			v1.GET("/movies", movieHandler.ListMovies)
			v1.POST("/orders", orderHandler.CreateOrder)
			v1.POST("/orders/location", orderHandler.UpdateOrderLocation)
			v1.GET("/trending", trendHandler.GetTrending)
			v1.POST("/trends/aggregate", trendHandler.RunAggregation)
		}

		log.Printf("Starting server on port %s", cfg.ServerPort)
		return r.Run(":" + cfg.ServerPort)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
