package inventory

import (
	"context"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/shared"
)

// ConsumptionService depletes stock FIFO across an item's batches. The whole
// request runs in one transaction: if any line cannot be satisfied, no batch
// and no item is modified.
type ConsumptionService struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewConsumptionService creates a new ConsumptionService
func NewConsumptionService(scope TransactionScope) *ConsumptionService {
	return &ConsumptionService{scope: scope}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ConsumptionService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Consume consumes stock for every requested line atomically
func (s *ConsumptionService) Consume(ctx context.Context, req ConsumeRequest) (*ConsumeResponse, error) {
	var (
		response *ConsumeResponse
		consumed []*inventory.Item
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var execErr error
		response, consumed, execErr = ConsumeWithRepos(ctx, repos.ItemRepo(), repos.BatchRepo(), req)
		return execErr
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		for _, item := range consumed {
			events := item.GetDomainEvents()
			if len(events) == 0 {
				continue
			}
			_ = s.eventPublisher.Publish(ctx, events...)
			item.ClearDomainEvents()
		}
	}

	return response, nil
}

// ConsumeWithRepos is the consumption engine proper, expressed over bare
// repositories so callers that already hold a transaction (order fulfillment)
// run the exact same code path. Per line: load the item, deplete its batches
// oldest first, rebuild the rollup from the surviving active batches, then
// subtract the consumed quantity.
func ConsumeWithRepos(ctx context.Context, itemRepo inventory.ItemRepository, batchRepo inventory.StockBatchRepository, req ConsumeRequest) (*ConsumeResponse, []*inventory.Item, error) {
	if len(req.Items) == 0 {
		return nil, nil, shared.NewDomainError("EMPTY_CONSUMPTION", "Consumption request must have at least one item")
	}

	results := make([]ConsumedItem, 0, len(req.Items))
	touched := make([]*inventory.Item, 0, len(req.Items))

	for _, line := range req.Items {
		item, err := itemRepo.FindByID(ctx, line.ItemID)
		if err != nil {
			return nil, nil, err
		}

		batches, err := batchRepo.FindActiveByItem(ctx, line.ItemID)
		if err != nil {
			return nil, nil, err
		}

		_, consumedValue, err := inventory.DepleteFIFO(batches, line.Quantity)
		if err != nil {
			return nil, nil, err
		}

		if err := batchRepo.SaveAll(ctx, batches); err != nil {
			return nil, nil, err
		}

		remaining, err := batchRepo.FindByItem(ctx, line.ItemID)
		if err != nil {
			return nil, nil, err
		}
		item.RecomputeFromBatches(remaining)

		if err := item.ConsumeQuantity(line.Quantity, req.ConsumedBy); err != nil {
			return nil, nil, err
		}

		if err := itemRepo.Save(ctx, item); err != nil {
			return nil, nil, err
		}

		results = append(results, ConsumedItem{
			ItemID:            item.ID,
			ProductName:       item.ProductName,
			Quantity:          line.Quantity,
			ConsumedValue:     consumedValue,
			RemainingQuantity: item.Quantity,
			Status:            string(item.Status),
		})
		touched = append(touched, item)
	}

	return &ConsumeResponse{Items: results}, touched, nil
}
