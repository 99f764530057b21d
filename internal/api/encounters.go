package api

import (
	"math/rand"
	"net/http"

	"github.com/Anthonyushie/underworld-clash/internal/constants"
	"github.com/Anthonyushie/underworld-clash/internal/logging"
	"github.com/Anthonyushie/underworld-clash/internal/service"

	"github.com/gin-gonic/gin"
)

type encounterRequest struct {
	AttackerID string `json:"attacker_id" binding:"required"`
	DefenderID string `json:"defender_id" binding:"required"`
}

// CreateEncounter resolves one attack. The request carries only the two
// player ids; every resulting stat is computed server-side from the stored
// profiles, so clients cannot supply post-battle values.
func (h *GameHandler) CreateEncounter(c *gin.Context) {
	var req encounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	battle, err := service.ResolveEncounter(h.ledger, h.repo, req.AttackerID, req.DefenderID, rand.Float64())
	if err != nil {
		switch err {
		case service.ErrProfileNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrProfileNotFound})
		case service.ErrInsufficientEnergy:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrInsufficientEnergy})
		case service.ErrSelfAttack:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrSelfAttack})
		default:
			logging.Error("encounter resolution failed", err, logging.Fields{
				constants.LogFieldAttackerID: req.AttackerID,
				constants.LogFieldDefenderID: req.DefenderID,
			})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateEncounter})
		}
		return
	}

	logging.Info("encounter resolved", logging.Fields{
		constants.LogFieldBattleID:   battle.ID,
		constants.LogFieldAttackerID: battle.AttackerID,
		constants.LogFieldDefenderID: battle.DefenderID,
		"winner_id":                  battle.WinnerID,
	})
	c.JSON(http.StatusCreated, battle)
}

// ListEncounters returns a player's battle history, newest first.
func (h *GameHandler) ListEncounters(c *gin.Context) {
	userID := c.Param("userId")
	battles, err := h.repo.GetBattlesByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchEncounters})
		return
	}
	c.JSON(http.StatusOK, battles)
}
