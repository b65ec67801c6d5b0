package inventory

import (
	"context"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LowStockAlertHandler logs stock threshold transitions so operators can
// restock before the kitchen runs dry.
type LowStockAlertHandler struct {
	logger *zap.Logger
}

// NewLowStockAlertHandler creates a new LowStockAlertHandler
func NewLowStockAlertHandler(logger *zap.Logger) *LowStockAlertHandler {
	return &LowStockAlertHandler{logger: logger.Named("lowstock")}
}

// Handle processes a stock threshold event
func (h *LowStockAlertHandler) Handle(_ context.Context, evt shared.DomainEvent) error {
	threshold, ok := evt.(*inventory.StockBelowThresholdEvent)
	if !ok {
		return nil
	}

	fields := []zap.Field{
		zap.String("item_id", threshold.ItemID.String()),
		zap.String("product_name", threshold.ProductName),
		zap.String("quantity", threshold.Quantity.String()),
		zap.String("status", string(threshold.Status)),
	}

	if threshold.Status == inventory.ItemStatusOutOfStock {
		h.logger.Warn("Item out of stock", fields...)
		return nil
	}
	h.logger.Info("Item low on stock", fields...)
	return nil
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockAlertHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowThreshold}
}

var _ shared.EventHandler = (*LowStockAlertHandler)(nil)
