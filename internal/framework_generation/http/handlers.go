package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

// GenerateFramework scaffolds a Playwright project from the request body
func (h *Handler) GenerateFramework(c *gin.Context) {
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := h.genService.Generate(c.Request.Context(), body.toDomain())
	if err != nil {
		// details are in the service log; callers only learn that it failed
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate framework"})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Message: successMessage,
		Path:    res.OutputDir,
		ID:      res.ID,
		Files:   res.Files,
	})
}

// GetGeneration retrieves a recorded generation by ID
func (h *Handler) GetGeneration(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "generation ID is required"})
		return
	}

	rec, err := h.genService.GetGeneration(c.Request.Context(), id)
	if err != nil {
		h.writeHistoryError(c, err, "failed to get generation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"generation": rec})
}

// ListGenerations lists recent generations
func (h *Handler) ListGenerations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	recs, err := h.genService.ListGenerations(c.Request.Context(), limit)
	if err != nil {
		h.writeHistoryError(c, err, "failed to list generations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"generations": recs})
}

func (h *Handler) writeHistoryError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrHistoryDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation history is disabled"})
	case errors.Is(err, domain.ErrGenerationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "generation not found"})
	default:
		logging.FromContext(c.Request.Context()).Error(msg, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
