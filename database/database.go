package database

import (
	"fmt"
	"log"
	"os"

	"moviesstore-backend/config"
	"moviesstore-backend/models"

	"github.com/goccy/go-json"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(cfg *config.Config) error {
	var err error

	// Configure GORM logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto migrate schemas
	err = DB.AutoMigrate(
		&models.Movie{},
		&models.Rating{},
		&models.Review{},
		&models.Order{},
		&models.Item{},
		&models.MovieLocationTrend{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database initialized successfully")
	return nil
}

// LoadMovieData loads the movie catalog from a JSON file into the database.
// The load is skipped when the catalog is already populated.
func LoadMovieData(filePath string) error {
	var count int64
	DB.Model(&models.Movie{}).Count(&count)
	if count > 0 {
		log.Printf("Database already contains %d movies, skipping catalog load", count)
		return nil
	}

	log.Println("Loading movie catalog from file:", filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var movies []models.Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	log.Printf("Parsed %d movies from file", len(movies))

	// Insert movies in batches
	batchSize := 100
	successCount := 0
	errorCount := 0

	for i := 0; i < len(movies); i += batchSize {
		end := i + batchSize
		if end > len(movies) {
			end = len(movies)
		}

		batch := movies[i:end]
		if err := DB.Create(&batch).Error; err != nil {
			log.Printf("Failed to insert batch: %v", err)
			errorCount += len(batch)
		} else {
			successCount += len(batch)
		}
	}

	log.Printf("Catalog load complete: %d successful, %d errors", successCount, errorCount)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
