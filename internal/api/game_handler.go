package api

import (
	"github.com/Anthonyushie/underworld-clash/internal/ledger"
	"github.com/Anthonyushie/underworld-clash/internal/storage"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo   storage.Repository
	ledger *ledger.Ledger
}

// NewGameHandler creates a new GameHandler with the given repository and
// ledger. All profile writes go through the ledger; the repository serves
// reads and append-only records.
func NewGameHandler(repo storage.Repository, led *ledger.Ledger) *GameHandler {
	return &GameHandler{repo: repo, ledger: led}
}
