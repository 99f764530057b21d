package main

import (
	"time"

	"github.com/Anthonyushie/underworld-clash/internal/api"
	"github.com/Anthonyushie/underworld-clash/internal/constants"
	"github.com/Anthonyushie/underworld-clash/internal/ledger"
	"github.com/Anthonyushie/underworld-clash/internal/logging"
	"github.com/Anthonyushie/underworld-clash/internal/service"

	"github.com/gin-gonic/gin"
)

// startRegenScanner runs the periodic regeneration sweep. The core packages
// never schedule regeneration themselves; this ticker is the external
// process that drives health and energy back toward the caps.
func startRegenScanner(repo service.RegenRepo, led *ledger.Ledger, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := service.RegenerateAll(repo, led, time.Now()); err != nil {
				logging.Error("regeneration sweep failed", err, nil)
			}
		}
	}()
}

func buildRouter(handler *api.GameHandler) *gin.Engine {
	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, handler.Health)
		apiRoutes.GET(constants.RouteVersion, api.Version)

		apiRoutes.GET(constants.RouteProfileByUser, handler.GetProfile)
		apiRoutes.GET(constants.RouteOpponentsByUser, handler.ListOpponents)

		apiRoutes.GET(constants.RouteItems, handler.ListItems)
		apiRoutes.GET(constants.RouteInventoryByUser, handler.ListInventory)
		apiRoutes.POST(constants.RouteInventoryEquip, handler.EquipItem)

		apiRoutes.POST(constants.RouteEncounters, handler.CreateEncounter)
		apiRoutes.GET(constants.RouteEncountersByUser, handler.ListEncounters)

		apiRoutes.GET(constants.RouteMarketplace, handler.ListMarketplace)
	}

	return router
}
