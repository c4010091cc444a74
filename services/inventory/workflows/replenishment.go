// Package workflows holds the Temporal workflows of the inventory context.
package workflows

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// ReplenishmentTaskQueue is the Temporal task queue for inventory workflows.
const ReplenishmentTaskQueue = "inventory-replenishment"

// ReplenishmentWorkflowID derives a deterministic workflow id from the item
// id, so repeated low-stock events for the same item collapse into a single
// running workflow instead of fanning out duplicates.
func ReplenishmentWorkflowID(itemID uuid.UUID) string {
	return "replenish-" + itemID.String()
}

// ReplenishmentRequest is the workflow input, a snapshot of the item state at
// the time the low-stock event fired.
type ReplenishmentRequest struct {
	ItemID           uuid.UUID
	Name             string
	Unit             string
	Quantity         float64
	ReorderThreshold float64
}

// ReplenishmentWorkflow drives the restocking of a low-stock item. It
// re-checks the live item state first: the event may be stale by the time the
// workflow runs (item restocked or deleted in the meantime), in which case it
// completes without ordering anything.
func ReplenishmentWorkflow(ctx workflow.Context, req ReplenishmentRequest) error {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 3,
		},
	})
	log := workflow.GetLogger(ctx)

	var stock StockStatus
	if err := workflow.ExecuteActivity(ctx, "CheckStock", req.ItemID).Get(ctx, &stock); err != nil {
		return err
	}
	if !stock.Exists || !stock.Low {
		log.Info("replenishment no longer needed", "item_id", req.ItemID)
		return nil
	}

	order := ReplenishmentOrder{
		ItemID:   req.ItemID,
		Name:     stock.Name,
		Unit:     stock.Unit,
		Quantity: orderQuantity(stock.Quantity, stock.ReorderThreshold),
	}
	if err := workflow.ExecuteActivity(ctx, "SubmitOrder", order).Get(ctx, nil); err != nil {
		return err
	}

	log.Info("replenishment order submitted", "item_id", req.ItemID, "quantity", order.Quantity)
	return nil
}

// orderQuantity restocks to twice the reorder threshold, with a floor of one
// unit for items whose threshold is zero.
func orderQuantity(quantity, threshold float64) float64 {
	target := threshold * 2
	if target <= quantity {
		target = quantity + 1
	}
	q := target - quantity
	if q < 1 {
		q = 1
	}
	return q
}
