package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "UNDERWORLD_CONFIG"
	EnvDBPath     = "UNDERWORLD_DB"

	// Default file locations
	DefaultConfigPath = "./underworld_config.json"
	DefaultDBPath     = "./data/underworld.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteHealth  = "/health"
	RouteVersion = "/version"

	RouteProfileByUser    = "/profiles/:userId"
	RouteOpponentsByUser  = "/opponents/:userId"
	RouteItems            = "/items"
	RouteInventoryByUser  = "/inventory/:userId"
	RouteInventoryEquip   = "/inventory/:userItemId/equip"
	RouteEncounters       = "/encounters"
	RouteEncountersByUser = "/encounters/:userId"
	RouteMarketplace      = "/marketplace"
)

// Common JSON response keys
const (
	JSONKeyError  = "error"
	JSONKeyStatus = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest        = "Invalid request"
	ErrProfileNotFound       = "Profile not found"
	ErrUserItemNotFound      = "Inventory item not found"
	ErrInsufficientEnergy    = "Not enough energy to attack"
	ErrSelfAttack            = "Cannot attack yourself"
	ErrFailedFetchProfile    = "Failed to fetch profile"
	ErrFailedFetchOpponents  = "Failed to fetch opponents"
	ErrFailedFetchItems      = "Failed to fetch items"
	ErrFailedFetchInventory  = "Failed to fetch inventory"
	ErrFailedUpdateItem      = "Failed to update item"
	ErrFailedCreateEncounter = "Failed to create encounter"
	ErrFailedFetchEncounters = "Failed to fetch encounters"
	ErrFailedFetchListings   = "Failed to fetch marketplace listings"
)

// Logging field names
const (
	LogFieldUserID     = "user_id"
	LogFieldAttackerID = "attacker_id"
	LogFieldDefenderID = "defender_id"
	LogFieldBattleID   = "battle_id"
	LogFieldAddr       = "addr"
)
