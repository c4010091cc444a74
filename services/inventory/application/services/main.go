package services

import (
	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Inventory *InventoryService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	audit := postgres.NewAuditRepository(a.Db)

	var categoryCache *cache.CategoryCache
	if a.Redis != nil {
		categoryCache = cache.NewCategoryCache(a.Redis)
	}

	// A nil *events.EventBus must stay a nil interface, or the service's
	// bus-disabled guard never fires.
	var bus EventPublisher
	if a.EventBus != nil {
		bus = a.EventBus
	}

	return &Services{
		Inventory: NewInventoryService(items, audit, categoryCache, bus, a.Logger),
	}
}
