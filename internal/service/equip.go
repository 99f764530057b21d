package service

import (
	"errors"

	"github.com/Anthonyushie/underworld-clash/internal/game"
)

var ErrUserItemNotFound = errors.New("inventory item not found")

// InventoryRepo is the slice of the repository the equip operation needs.
type InventoryRepo interface {
	GetUserItemByID(id string) (*game.UserItem, error)
	SaveUserItem(ui *game.UserItem) error
}

// SetItemEquipped toggles the equipped flag on exactly one inventory row.
// There is no slot exclusivity: equipping an item never unequips another,
// so a player may carry several weapons into battle at once.
func SetItemEquipped(repo InventoryRepo, userItemID string, equipped bool) (*game.UserItem, error) {
	row, err := repo.GetUserItemByID(userItemID)
	if err != nil || row == nil {
		return nil, ErrUserItemNotFound
	}
	if row.Equipped == equipped {
		return row, nil
	}
	row.Equipped = equipped
	if err := repo.SaveUserItem(row); err != nil {
		return nil, err
	}
	return row, nil
}
