package api

import (
	"net/http"

	"github.com/Anthonyushie/underworld-clash/internal/constants"
	"github.com/Anthonyushie/underworld-clash/internal/service"

	"github.com/gin-gonic/gin"
)

// ListItems returns the full item catalog.
func (h *GameHandler) ListItems(c *gin.Context) {
	items, err := h.repo.GetItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchItems})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListInventory returns a player's items with catalog details attached.
func (h *GameHandler) ListInventory(c *gin.Context) {
	userID := c.Param("userId")
	rows, err := h.repo.GetUserItems(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchInventory})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type equipRequest struct {
	Equipped *bool `json:"equipped" binding:"required"`
}

// EquipItem toggles the equipped flag on one inventory row.
func (h *GameHandler) EquipItem(c *gin.Context) {
	userItemID := c.Param("userItemId")
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Equipped == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	row, err := service.SetItemEquipped(h.repo, userItemID, *req.Equipped)
	if err != nil {
		switch err {
		case service.ErrUserItemNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrUserItemNotFound})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateItem})
		}
		return
	}
	c.JSON(http.StatusOK, row)
}
