package handlers

import (
	"net/http"

	"moviesstore-backend/models"
	"moviesstore-backend/services"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	store *services.Store
}

// NewMovieHandler creates a new movie handler
func NewMovieHandler(store *services.Store) *MovieHandler {
	return &MovieHandler{store: store}
}

// ListMovies returns the catalog.
// GET /api/v1/movies
func (h *MovieHandler) ListMovies(c *gin.Context) {
	var movies []models.Movie
	if err := h.store.DB().Order("id").Find(&movies).Error; err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movies": movies,
		"count":  len(movies),
	})
}
