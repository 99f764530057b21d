package storage

import (
	"errors"

	"github.com/Anthonyushie/underworld-clash/internal/game"
	"github.com/Anthonyushie/underworld-clash/internal/ledger"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetProfileByUserID(userID string) (*game.Profile, error) {
	var p game.Profile
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) SaveProfile(p *game.Profile) error {
	return r.db.Save(p).Error
}

func (r *sqliteRepository) CreateProfile(p *game.Profile) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) GetOpponents(userID string) ([]game.Profile, error) {
	var profiles []game.Profile
	if err := r.db.Where("user_id != ?", userID).Order("xp DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *sqliteRepository) GetAllProfiles() ([]game.Profile, error) {
	var profiles []game.Profile
	if err := r.db.Order("xp DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *sqliteRepository) GetItems() ([]game.GameItem, error) {
	var items []game.GameItem
	if err := r.db.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *sqliteRepository) GetItemByID(id string) (*game.GameItem, error) {
	var item game.GameItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *sqliteRepository) GetUserItems(userID string) ([]game.UserItem, error) {
	var rows []game.UserItem
	if err := r.db.Preload("Item").Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *sqliteRepository) GetUserItemByID(id string) (*game.UserItem, error) {
	var row game.UserItem
	if err := r.db.Preload("Item").First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *sqliteRepository) SaveUserItem(ui *game.UserItem) error {
	return r.db.Save(ui).Error
}

func (r *sqliteRepository) GetEquippedItems(userID string) ([]game.GameItem, error) {
	var rows []game.UserItem
	if err := r.db.Preload("Item").Where("user_id = ? AND equipped = ?", userID, true).Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]game.GameItem, 0, len(rows))
	for i := range rows {
		if rows[i].Item != nil {
			items = append(items, *rows[i].Item)
		}
	}
	return items, nil
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBattlesByUser(userID string) ([]game.Battle, error) {
	var battles []game.Battle
	if err := r.db.
		Where("attacker_id = ? OR defender_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&battles).Error; err != nil {
		return nil, err
	}
	return battles, nil
}

func (r *sqliteRepository) GetActiveListings() ([]game.MarketplaceListing, error) {
	var listings []game.MarketplaceListing
	if err := r.db.
		Preload("Item").
		Preload("Seller").
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
