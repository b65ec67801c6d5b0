package inventory

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	itemCodeLength = 10
	// codeAttempts bounds the uniqueness retry loop for generated item codes
	codeAttempts = 5

	// pickerLimit caps the purchase-picker search when no search term is given
	pickerLimit = 5
)

// ItemService handles inventory item CRUD and queries
type ItemService struct {
	itemRepo       inventory.ItemRepository
	batchRepo      inventory.StockBatchRepository
	eventPublisher shared.EventPublisher
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo inventory.ItemRepository, batchRepo inventory.StockBatchRepository) *ItemService {
	return &ItemService{
		itemRepo:  itemRepo,
		batchRepo: batchRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ItemService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new inventory item with a generated unique code
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	name := strings.ToLower(strings.TrimSpace(req.ProductName))
	exists, err := s.itemRepo.ExistsByName(ctx, name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this product name already exists")
	}

	code, err := s.generateUniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	item, err := inventory.NewItem(req.ProductName, code, req.Unit, req.Price, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	return NewItemResponse(item), nil
}

// Update updates an item's descriptive fields. The generated code is kept.
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(strings.TrimSpace(req.ProductName))
	exists, err := s.itemRepo.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this product name already exists")
	}

	if err := item.UpdateDetails(req.ProductName, item.Code, req.Unit, req.Price, req.UpdatedBy); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return NewItemResponse(item), nil
}

// Delete deletes an item. Items that still own stock batches cannot be
// deleted; the ledger would lose its cost history.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasBatches, err := s.batchRepo.ExistsByItem(ctx, id)
	if err != nil {
		return err
	}
	if hasBatches {
		return shared.NewDomainError("CONFLICT", "Item has stock batches and cannot be deleted")
	}

	return s.itemRepo.Delete(ctx, id)
}

// GetByID fetches a single item
func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewItemResponse(item), nil
}

// List lists items with pagination and optional search/status filtering
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) (*shared.Paginated[ItemResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	f.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	items, err := s.itemRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.itemRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, *NewItemResponse(&items[idx]))
	}

	return shared.NewPaginated(responses, total, f.Page, f.PageSize), nil
}

// Search is the purchase-picker lookup: a case-insensitive name match, capped
// to a handful of rows when no term is given.
func (s *ItemService) Search(ctx context.Context, search string) ([]ItemResponse, error) {
	f := shared.DefaultFilter()
	f.Search = strings.TrimSpace(search)
	f.PageSize = pickerLimit

	items, err := s.itemRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for idx := range items {
		responses = append(responses, *NewItemResponse(&items[idx]))
	}

	return responses, nil
}

// GetBatchHistory returns an item's batch ledger with an aggregate summary
func (s *ItemService) GetBatchHistory(ctx context.Context, itemID uuid.UUID) (*BatchHistoryResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	batches, err := s.batchRepo.FindByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	responses := make([]BatchResponse, 0, len(batches))
	summary := BatchSummary{TotalBatches: len(batches)}
	for idx := range batches {
		batch := &batches[idx]
		responses = append(responses, *NewBatchResponse(batch))
		if batch.Status == inventory.BatchStatusActive {
			summary.ActiveBatches++
			summary.RemainingQuantity = summary.RemainingQuantity.Add(batch.RemainingQuantity)
			summary.RemainingValue = summary.RemainingValue.Add(batch.RemainingValue())
		}
	}

	return &BatchHistoryResponse{
		Item:    NewItemResponse(item),
		Batches: responses,
		Summary: summary,
	}, nil
}

// generateUniqueCode draws random digit codes until one is free. The retry
// loop is bounded so a pathologically full code space surfaces as an error
// instead of a hang.
func (s *ItemService) generateUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := randomDigits(itemCodeLength)
		if err != nil {
			return "", err
		}

		exists, err := s.itemRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", shared.NewDomainError("CODE_GENERATION_EXHAUSTED", "Could not generate a unique item code")
}

// randomDigits returns a cryptographically random string of n digits
func randomDigits(n int) (string, error) {
	const digits = "0123456789"
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		buf[i] = digits[idx.Int64()]
	}
	return string(buf), nil
}

func (s *ItemService) publishEvents(ctx context.Context, item *inventory.Item) {
	if s.eventPublisher == nil {
		return
	}
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish events (errors are logged by the event bus, not propagated)
	_ = s.eventPublisher.Publish(ctx, events...)
	item.ClearDomainEvents()
}
