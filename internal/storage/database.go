package storage

import (
	"github.com/Anthonyushie/underworld-clash/internal/game"
	"github.com/Anthonyushie/underworld-clash/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database, keeps the schema updated via
// AutoMigrate and seeds the item catalog from the configuration file when
// the table is empty. When seedDemo is set, a handful of demo profiles are
// created on first run so the API is usable without an account system.
func OpenAndMigrate(dataSourceName string, itemsFromConfig []game.GameItem, seedDemo bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&game.Profile{},
		&game.GameItem{},
		&game.UserItem{},
		&game.Battle{},
		&game.MarketplaceListing{},
	)
	if err != nil {
		return nil, err
	}

	seedDefaultItems(db, itemsFromConfig)
	if seedDemo {
		seedDemoProfiles(db)
	}
	return db, nil
}

func seedDefaultItems(db *gorm.DB, itemsFromConfig []game.GameItem) {
	var count int64
	db.Model(&game.GameItem{}).Count(&count)
	if count > 0 || len(itemsFromConfig) == 0 {
		return
	}
	items := make([]game.GameItem, len(itemsFromConfig))
	copy(items, itemsFromConfig)
	if err := db.Create(&items).Error; err != nil {
		logging.Error("failed to seed item catalog", err, nil)
		return
	}
	logging.Info("item catalog seeded", logging.Fields{"items": len(items)})
}

// seedDemoProfiles creates three demo players and hands the first one a
// weapon so an attack immediately exercises the equipped-item bonus.
func seedDemoProfiles(db *gorm.DB) {
	var count int64
	db.Model(&game.Profile{}).Count(&count)
	if count > 0 {
		return
	}

	don := game.NewProfile("user-1", "DonCorleone")
	don.Level = 5
	don.XP = 750
	don.Health = 85
	don.Energy = 7
	don.MaxEnergy = 10
	don.Currency = 25000

	al := game.NewProfile("user-2", "ScarfaceAl")
	al.Level = 4
	al.XP = 600
	al.Health = 70
	al.MaxHealth = 95
	al.Energy = 3
	al.MaxEnergy = 8
	al.Currency = 15000

	lucky := game.NewProfile("user-3", "LuckyLuciano")
	lucky.Level = 6
	lucky.XP = 900
	lucky.Health = 100
	lucky.MaxHealth = 110
	lucky.Energy = 5
	lucky.MaxEnergy = 12
	lucky.Currency = 35000

	for _, p := range []*game.Profile{don, al, lucky} {
		if err := db.Create(p).Error; err != nil {
			logging.Error("failed to seed demo profile", err, logging.Fields{"username": p.Username})
			return
		}
	}

	var weapon game.GameItem
	if err := db.Where("category = ?", game.CategoryWeapon).First(&weapon).Error; err != nil {
		// No weapon in the catalog; demo players just fight bare-handed.
		return
	}
	ui := game.UserItem{UserID: don.UserID, ItemID: weapon.ID, Equipped: true, Quantity: 1}
	if err := db.Create(&ui).Error; err != nil {
		logging.Error("failed to seed demo inventory", err, logging.Fields{"username": don.Username})
		return
	}
	logging.Info("demo profiles seeded", logging.Fields{"profiles": 3})
}
