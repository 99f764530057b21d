package api

import (
	"errors"
	"net/http"

	"github.com/Anthonyushie/underworld-clash/internal/constants"
	"github.com/Anthonyushie/underworld-clash/internal/ledger"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the resource bundle for one player.
func (h *GameHandler) GetProfile(c *gin.Context) {
	userID := c.Param("userId")
	p, err := h.repo.GetProfileByUserID(userID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProfileNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchProfile})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListOpponents returns every other player's profile, highest XP first,
// as raw material for an external arena or leaderboard view.
func (h *GameHandler) ListOpponents(c *gin.Context) {
	userID := c.Param("userId")
	profiles, err := h.repo.GetOpponents(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchOpponents})
		return
	}
	c.JSON(http.StatusOK, profiles)
}
