package api

import (
	"net/http"
	"time"

	"github.com/Anthonyushie/underworld-clash/internal/constants"

	"github.com/gin-gonic/gin"
)

// ListMarketplace returns active listings with item and seller attached.
func (h *GameHandler) ListMarketplace(c *gin.Context) {
	listings, err := h.repo.GetActiveListings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchListings})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// Health reports liveness for probes and the healthcheck binary.
func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyStatus: "ok",
		"timestamp":             time.Now().UTC().Format(time.RFC3339),
	})
}
