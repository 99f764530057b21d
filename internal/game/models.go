package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item categories and rarities as persisted in the catalog.
const (
	CategoryWeapon     = "weapon"
	CategoryArmor      = "armor"
	CategoryUtility    = "utility"
	CategoryConsumable = "consumable"
	CategorySpecial    = "special"
)

const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Default caps applied when a profile is created.
const (
	DefaultLevel     = 1
	DefaultMaxHealth = 100
	DefaultMaxEnergy = 100
	DefaultCurrency  = 1000
)

// Profile is a player's mutable resource bundle. It is mutated exclusively
// through the ledger's per-player atomic update; handlers and services never
// write it directly.
type Profile struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	UserID    string `json:"user_id" gorm:"uniqueIndex;size:64"`
	Username  string `json:"username" gorm:"uniqueIndex;size:32"`
	Level     int    `json:"level"`
	XP        int    `json:"xp"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"max_health"`
	Energy    int    `json:"energy"`
	MaxEnergy int    `json:"max_energy"`
	Currency  int    `json:"currency"`
	// Restrained players are temporarily out of action until the release
	// timestamp passes; the regeneration sweep clears the flag.
	IsRestrained    bool       `json:"is_restrained"`
	RestrainedUntil *time.Time `json:"restrained_until,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// NewProfile creates a profile with the default starting resources.
func NewProfile(userID, username string) *Profile {
	return &Profile{
		UserID:    userID,
		Username:  username,
		Level:     DefaultLevel,
		XP:        0,
		Health:    DefaultMaxHealth,
		MaxHealth: DefaultMaxHealth,
		Energy:    DefaultMaxEnergy,
		MaxEnergy: DefaultMaxEnergy,
		Currency:  DefaultCurrency,
	}
}

// GameItem is one catalog entry. Stats live in the Effect vector, stored as
// a JSON column so new effect kinds do not require schema changes.
type GameItem struct {
	ID          string       `json:"id" gorm:"primaryKey;size:36"`
	Name        string       `json:"name" gorm:"uniqueIndex;size:64"`
	Description string       `json:"description" gorm:"size:256"`
	Category    string       `json:"category" gorm:"size:16"`
	Effect      EffectVector `json:"effect" gorm:"serializer:json"`
	Price       int          `json:"price"`
	Rarity      string       `json:"rarity" gorm:"size:16"`
	CreatedAt   time.Time    `json:"created_at"`
}

func (GameItem) TableName() string { return "game_items" }

func (i *GameItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// UserItem is one inventory row. Equipped is a free boolean per row: any
// number of items may be equipped at once, including several weapons.
type UserItem struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"index;size:64"`
	ItemID    string    `json:"item_id" gorm:"size:36"`
	Equipped  bool      `json:"equipped"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`

	// Item is populated on reads so inventory responses include the full
	// catalog entry alongside the ownership row.
	Item *GameItem `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ID"`
}

func (UserItem) TableName() string { return "user_items" }

func (u *UserItem) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Quantity == 0 {
		u.Quantity = 1
	}
	return nil
}

// PowerSnapshot freezes the inputs of one side of a battle at resolution
// time so history entries replay to the same power value.
type PowerSnapshot struct {
	Level int `json:"level"`
	Power int `json:"power"`
}

// Battle is an immutable record of one resolved encounter. Rows are only
// ever created; nothing updates or deletes them.
type Battle struct {
	ID               string        `json:"id" gorm:"primaryKey;size:36"`
	AttackerID       string        `json:"attacker_id" gorm:"index;size:64"`
	DefenderID       string        `json:"defender_id" gorm:"index;size:64"`
	WinnerID         string        `json:"winner_id" gorm:"size:64"`
	AttackerSnapshot PowerSnapshot `json:"attacker_snapshot" gorm:"serializer:json"`
	DefenderSnapshot PowerSnapshot `json:"defender_snapshot" gorm:"serializer:json"`
	RewardCurrency   int           `json:"reward_currency"`
	RewardItemID     *string       `json:"reward_item_id,omitempty" gorm:"size:36"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (Battle) TableName() string { return "battles" }

func (b *Battle) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// MarketplaceListing is one active or retired sale offer.
type MarketplaceListing struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ItemID    string    `json:"item_id" gorm:"size:36"`
	SellerID  string    `json:"seller_id" gorm:"size:64"`
	Price     int       `json:"price"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`

	Item   *GameItem `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ID"`
	Seller *Profile  `json:"seller,omitempty" gorm:"foreignKey:SellerID;references:UserID"`
}

func (MarketplaceListing) TableName() string { return "marketplace_listings" }

func (m *MarketplaceListing) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
