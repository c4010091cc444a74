package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/logger"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/infrastructure/persistence/postgres"
)

// seedActor is recorded as the creator and audit actor of every starter item.
const seedActor = "seed_script"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Replace, don't append: the starter inventory is a known fixture, so a
	// re-run resets both the items and their history.
	log.Info("clearing existing inventory data")
	if _, err := pool.DB().ExecContext(ctx, `TRUNCATE items, audit_log`); err != nil {
		log.Error("failed to clear tables", "error", err)
		os.Exit(1)
	}

	svc := appsvcs.NewInventoryService(
		postgres.NewItemRepository(pool, nil),
		postgres.NewAuditRepository(pool),
		nil, nil, log,
	)

	n, err := seedInventory(ctx, svc)
	if err != nil {
		log.Error("seeding failed", "error", err, "created", n)
		os.Exit(1)
	}
	log.Info("seed completed", "items", n)
}

// seedInventory creates every starter item through the inventory service so
// each one gets its create audit entry.
func seedInventory(ctx context.Context, svc *appsvcs.InventoryService) (int, error) {
	created := 0
	for _, in := range starterItems() {
		if _, err := svc.Create(ctx, seedActor, in); err != nil {
			return created, fmt.Errorf("seed %q: %w", in.Name, err)
		}
		created++
	}
	return created, nil
}

func starterItems() []models.ItemInput {
	return []models.ItemInput{
		{Name: "Mozzarella Cheese", Category: "Dairy", Unit: "kg", Quantity: 50, ReorderThreshold: 10, CostPrice: decimal.NewFromFloat(8.99)},
		{Name: "Pepperoni", Category: "Meats", Unit: "kg", Quantity: 25, ReorderThreshold: 5, CostPrice: decimal.NewFromFloat(12.5)},
		{Name: "Pizza Dough", Category: "Bakery", Unit: "units", Quantity: 100, ReorderThreshold: 20, CostPrice: decimal.NewFromFloat(1.5)},
		{Name: "Tomato Sauce", Category: "Sauces", Unit: "liters", Quantity: 30, ReorderThreshold: 8, CostPrice: decimal.NewFromFloat(4.25)},
		{Name: "Bell Peppers", Category: "Vegetables", Unit: "kg", Quantity: 15, ReorderThreshold: 5, CostPrice: decimal.NewFromFloat(3.75)},
		{Name: "Mushrooms", Category: "Vegetables", Unit: "kg", Quantity: 12, ReorderThreshold: 4, CostPrice: decimal.NewFromFloat(5.5)},
		{Name: "Italian Sausage", Category: "Meats", Unit: "kg", Quantity: 20, ReorderThreshold: 6, CostPrice: decimal.NewFromFloat(9.99)},
		{Name: "Parmesan Cheese", Category: "Dairy", Unit: "kg", Quantity: 8, ReorderThreshold: 3, CostPrice: decimal.NewFromFloat(15.99)},
		{Name: "Olive Oil", Category: "Oils", Unit: "liters", Quantity: 10, ReorderThreshold: 3, CostPrice: decimal.NewFromFloat(12.0)},
		{Name: "Fresh Basil", Category: "Herbs", Unit: "bunches", Quantity: 20, ReorderThreshold: 5, CostPrice: decimal.NewFromFloat(2.5)},
		{Name: "Black Olives", Category: "Toppings", Unit: "kg", Quantity: 5, ReorderThreshold: 2, CostPrice: decimal.NewFromFloat(6.75)},
		{Name: "Onions", Category: "Vegetables", Unit: "kg", Quantity: 18, ReorderThreshold: 5, CostPrice: decimal.NewFromFloat(2.25)},
	}
}
