package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/stockroom/pkg/app"
	"github.com/ghuser/stockroom/pkg/cache"
	"github.com/ghuser/stockroom/pkg/config"
	"github.com/ghuser/stockroom/pkg/database"
	"github.com/ghuser/stockroom/pkg/events"
	"github.com/ghuser/stockroom/pkg/logger"
	"github.com/ghuser/stockroom/pkg/telemetry"
	"github.com/ghuser/stockroom/pkg/workflows"
	domainevents "github.com/ghuser/stockroom/services/inventory/domain/events"
	"github.com/ghuser/stockroom/services/inventory/infrastructure/persistence/postgres"
	invworkflows "github.com/ghuser/stockroom/services/inventory/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	tw, err := startTemporalWorker(appConfig)
	if err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer tw.Stop()

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// startTemporalWorker registers the replenishment workflow and its activities
// and starts polling the task queue.
func startTemporalWorker(a *app.Application) (worker.Worker, error) {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	activities := invworkflows.NewActivities(items, a.EventBus, a.Logger)

	w := worker.New(a.TemporalClient.Client, invworkflows.ReplenishmentTaskQueue, worker.Options{})
	w.RegisterWorkflow(invworkflows.ReplenishmentWorkflow)
	w.RegisterActivity(activities.CheckStock)
	w.RegisterActivity(activities.SubmitOrder)

	if err := w.Start(); err != nil {
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}
	a.Logger.Info("temporal worker started", "task_queue", invworkflows.ReplenishmentTaskQueue)
	return w, nil
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		domainevents.TopicItemCreated: handleItemCreated(a),
		domainevents.TopicLowStock:    handleLowStock(a),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{domainevents.TopicItemCreated, domainevents.TopicLowStock})
	return nil
}

// handleItemCreated returns a handler for item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Re-warms the Redis category cache so GET /categories is served hot after
// every new item lands.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	categoryCache := cache.NewCategoryCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		categories, err := items.Categories(ctx)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		if err := categoryCache.Set(ctx, categories); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "category cache warm failed",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "category cache warmed",
				"item_id", evt.ItemID, "categories", len(categories))
		}

		return nil
	}
}

// handleLowStock returns a handler for low_stock events. Each event starts
// the replenishment workflow under a per-item workflow id, so bursts of
// low-stock events for the same item collapse into one running workflow.
func handleLowStock(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.LowStockEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		opts := client.StartWorkflowOptions{
			ID:        invworkflows.ReplenishmentWorkflowID(evt.ItemID),
			TaskQueue: invworkflows.ReplenishmentTaskQueue,
		}
		req := invworkflows.ReplenishmentRequest{
			ItemID:           evt.ItemID,
			Name:             evt.Name,
			Unit:             evt.Unit,
			Quantity:         evt.Quantity,
			ReorderThreshold: evt.ReorderThreshold,
		}

		_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, opts, invworkflows.ReplenishmentWorkflow, req)
		if err != nil {
			var started *serviceerror.WorkflowExecutionAlreadyStarted
			if errors.As(err, &started) {
				a.Logger.InfoContext(ctx, "replenishment already running", "item_id", evt.ItemID)
				return nil
			}
			return fmt.Errorf("start replenishment workflow: %w", err)
		}

		a.Logger.InfoContext(ctx, "replenishment workflow started",
			"item_id", evt.ItemID, "name", evt.Name, "quantity", evt.Quantity)
		return nil
	}
}
