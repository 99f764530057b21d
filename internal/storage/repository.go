package storage

import (
	"github.com/Anthonyushie/underworld-clash/internal/game"
)

// Repository is the persistence surface consumed by the service and API
// layers. The shipped implementation is SQLite via GORM; tests substitute
// in-memory fakes for the slices they need.
type Repository interface {
	// Profiles
	GetProfileByUserID(userID string) (*game.Profile, error)
	SaveProfile(p *game.Profile) error
	CreateProfile(p *game.Profile) error
	// GetOpponents returns every profile except the given player's,
	// highest experience first.
	GetOpponents(userID string) ([]game.Profile, error)
	// GetAllProfiles returns every profile, highest experience first.
	GetAllProfiles() ([]game.Profile, error)

	// Item catalog
	GetItems() ([]game.GameItem, error)
	GetItemByID(id string) (*game.GameItem, error)

	// Inventory
	GetUserItems(userID string) ([]game.UserItem, error)
	GetUserItemByID(id string) (*game.UserItem, error)
	SaveUserItem(ui *game.UserItem) error
	// GetEquippedItems resolves the catalog entries for every item the
	// player currently has equipped.
	GetEquippedItems(userID string) ([]game.GameItem, error)

	// Battles (append-only)
	CreateBattle(b *game.Battle) error
	// GetBattlesByUser returns battles the player took part in on either
	// side, newest first.
	GetBattlesByUser(userID string) ([]game.Battle, error)

	// Marketplace
	GetActiveListings() ([]game.MarketplaceListing, error)
}
