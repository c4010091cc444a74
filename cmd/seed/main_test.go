package main

import (
	"context"
	"errors"
	"testing"

	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/logger"
	appsvcs "github.com/ghuser/stockroom/services/inventory/application/services"
	invdomain "github.com/ghuser/stockroom/services/inventory/domain"
	"github.com/ghuser/stockroom/services/inventory/domain/models"
	"github.com/ghuser/stockroom/services/inventory/domain/repositories"
	"github.com/ghuser/stockroom/services/inventory/infrastructure/persistence/memory"
)

func TestSeedInventory(t *testing.T) {
	items := memory.NewItemRepository()
	audit := memory.NewAuditRepository()
	log := logger.New(&config.Config{LogLevel: "error"})
	svc := appsvcs.NewInventoryService(items, audit, nil, nil, log)
	ctx := context.Background()

	n, err := seedInventory(ctx, svc)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if want := len(starterItems()); n != want {
		t.Fatalf("expected %d items created, got %d", want, n)
	}

	seeded, total, err := items.List(ctx, repositories.ListQuery{
		SortField: repositories.SortByName, SortOrder: repositories.SortAsc, Limit: 100,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != n {
		t.Fatalf("expected %d items in store, got %d", n, total)
	}

	for _, item := range seeded {
		if item.CreatedBy != seedActor {
			t.Fatalf("%s: expected creator %q, got %q", item.Name, seedActor, item.CreatedBy)
		}
		entries, err := audit.ListByItem(ctx, item.ID, 10)
		if err != nil {
			t.Fatalf("%s: audit: %v", item.Name, err)
		}
		if len(entries) != 1 {
			t.Fatalf("%s: expected 1 audit entry, got %d", item.Name, len(entries))
		}
		if entries[0].Action != models.ActionCreate || entries[0].ActorID != seedActor {
			t.Fatalf("%s: unexpected audit entry %+v", item.Name, entries[0])
		}
	}

	// A second run against a populated store trips the uniqueness guard;
	// main truncates first, so this only happens when the clear is skipped.
	if _, err := seedInventory(ctx, svc); !errors.Is(err, invdomain.ErrDuplicateItemName) {
		t.Fatalf("expected ErrDuplicateItemName on re-run, got %v", err)
	}
}
