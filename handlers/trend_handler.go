package handlers

import (
	"net/http"

	"moviesstore-backend/config"
	"moviesstore-backend/models"
	"moviesstore-backend/services"

	"github.com/gin-gonic/gin"
)

type TrendHandler struct {
	store              *services.Store
	aggregationService *services.AggregationService
	exportService      *services.ExportService
	cfg                *config.Config
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(store *services.Store, aggregationService *services.AggregationService, exportService *services.ExportService, cfg *config.Config) *TrendHandler {
	return &TrendHandler{
		store:              store,
		aggregationService: aggregationService,
		exportService:      exportService,
		cfg:                cfg,
	}
}

// GetTrending returns every persisted trend row for the map front end.
// GET /api/v1/trending
func (h *TrendHandler) GetTrending(c *gin.Context) {
	trends, err := h.store.AllTrends()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	results := make([]models.TrendResponse, len(trends))
	for i := range trends {
		results[i] = trends[i].ToResponse()
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// RunAggregation triggers an aggregation run over the configured window.
// POST /api/v1/trends/aggregate
// Body: {"days": 30, "force": false, "export": false, "export_file": "..."}
func (h *TrendHandler) RunAggregation(c *gin.Context) {
	var req struct {
		Days       *int   `json:"days"`
		Force      bool   `json:"force"`
		Export     bool   `json:"export"`
		ExportFile string `json:"export_file"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	days := h.cfg.TrendWindowDays
	if req.Days != nil {
		if *req.Days < 0 {
			respondBadRequest(c, "days must not be negative")
			return
		}
		days = *req.Days
	}

	report, err := h.aggregationService.Aggregate(days, req.Force)
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	response := gin.H{"report": report}

	if req.Export {
		destination := req.ExportFile
		if destination == "" {
			destination = h.cfg.ExportFile
		}
		count, err := h.exportService.Export(destination)
		if err != nil {
			respondInternalError(c, err.Error())
			return
		}
		response["exported"] = count
		response["export_file"] = destination
	}

	c.JSON(http.StatusOK, response)
}
