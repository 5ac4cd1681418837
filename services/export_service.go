package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"moviesstore-backend/models"

	"github.com/goccy/go-json"
)

// ExportService flattens every persisted trend row into map-marker records
// for the map front end.
type ExportService struct {
	store *Store
}

// NewExportService creates a new export service instance
func NewExportService(store *Store) *ExportService {
	return &ExportService{store: store}
}

// Export writes all trend rows as a JSON marker array to the given path,
// replacing any prior contents. The whole historical table is exported, no
// window filter. Returns the number of markers written.
func (s *ExportService) Export(path string) (int, error) {
	log.Printf("Exporting trend data to %s for the map", path)

	trends, err := s.store.AllTrends()
	if err != nil {
		return 0, err
	}

	markers := make([]models.TrendMarker, 0, len(trends))
	for i := range trends {
		markers = append(markers, buildMarker(&trends[i]))
	}

	data, err := json.MarshalIndent(markers, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode markers: %w", err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return 0, fmt.Errorf("failed to write export file: %w", err)
	}

	log.Printf("Exported %d markers to %s", len(markers), path)
	return len(markers), nil
}

// buildMarker denormalizes one trend row into its marker record. Title and
// info formats are what the map consumer expects.
func buildMarker(trend *models.MovieLocationTrend) models.TrendMarker {
	return models.TrendMarker{
		Lat:   trend.Latitude,
		Lng:   trend.Longitude,
		Title: fmt.Sprintf("%s - %s, %s", trend.Movie.Name, trend.City, trend.State),
		Info: fmt.Sprintf("<b>%s</b><br>Location: %s, %s<br>Purchases: %d<br>Price: $%d",
			trend.Movie.Name, trend.City, trend.State, trend.PurchaseCount, trend.Movie.Price),
		Purchases: trend.PurchaseCount,
		MovieName: trend.Movie.Name,
		City:      trend.City,
		State:     trend.State,
	}
}

// writeFileAtomic writes through a temp file in the destination directory so
// the export is replaced whole or not at all.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".trends-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
