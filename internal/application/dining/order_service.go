package dining

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	inventoryapp "github.com/dinehub/backend/internal/application/inventory"
	"github.com/dinehub/backend/internal/domain/dining"
	"github.com/dinehub/backend/internal/domain/inventory"
	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderNumberLength = 6

// OrderService handles the order lifecycle: placement, kitchen preparation,
// merging, settlement and stock fulfillment.
type OrderService struct {
	scope          TransactionScope
	orderRepo      dining.OrderRepository
	sectionRepo    dining.SectionRepository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new OrderService
func NewOrderService(scope TransactionScope, orderRepo dining.OrderRepository, sectionRepo dining.SectionRepository) *OrderService {
	return &OrderService{
		scope:       scope,
		orderRepo:   orderRepo,
		sectionRepo: sectionRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create places a new order. Line prices and titles are snapshotted from the
// menu at placement time; a dine-in order seats and occupies its table.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	orderType := dining.OrderType(req.Type)
	if orderType == dining.OrderTypeDineIn && req.TableID == nil {
		return nil, shared.NewDomainError("MISSING_TABLE", "Dine-in orders require a table")
	}

	var response *OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		lines, err := s.resolveLines(ctx, repos.MenuItemRepo(), req.Items)
		if err != nil {
			return err
		}

		var table *dining.Table
		if req.TableID != nil {
			table, err = repos.TableRepo().FindByID(ctx, *req.TableID)
			if err != nil {
				return err
			}
			if table.Status == dining.TableStatusOccupied {
				return shared.NewDomainError("TABLE_OCCUPIED", "Table already has an active order")
			}
		}

		number, err := randomDigits(orderNumberLength)
		if err != nil {
			return err
		}

		order, err := dining.NewOrder(number, orderType, req.TableID, req.Location, req.LocationMap, req.GuestCount, lines, req.CustomerID)
		if err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}

		if table != nil {
			table.Occupy()
			if err := repos.TableRepo().Save(ctx, table); err != nil {
				return err
			}
		}

		response = NewOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// GetByID fetches a single order with its lines
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewOrderResponse(order), nil
}

// List lists orders, open ones first, with optional status and type filters
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		f.Filters["type"] = filter.Type
	}

	orders, err := s.orderRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for idx := range orders {
		responses = append(responses, *NewOrderResponse(&orders[idx]))
	}

	return shared.NewPaginated(responses, total, f.Page, f.PageSize), nil
}

// KitchenView returns the open orders routed to a section, trimmed to the
// lines that section prepares.
func (s *OrderService) KitchenView(ctx context.Context, sectionID uuid.UUID) ([]KitchenOrderResponse, error) {
	if _, err := s.sectionRepo.FindByID(ctx, sectionID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindActiveBySection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	responses := make([]KitchenOrderResponse, 0, len(orders))
	for idx := range orders {
		view := NewKitchenOrderResponse(&orders[idx], sectionID)
		if len(view.Items) == 0 {
			continue
		}
		responses = append(responses, *view)
	}
	return responses, nil
}

// SetItemStatus updates one line's preparation state; the order status follows
// from the rollup of its lines.
func (s *OrderService) SetItemStatus(ctx context.Context, orderID, itemID uuid.UUID, status dining.OrderItemStatus) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.SetItemStatus(itemID, status); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	return NewOrderResponse(order), nil
}

// Merge folds the source order into the target order, deletes the source and
// releases the source table. Guests moving to a shared table keep one bill.
func (s *OrderService) Merge(ctx context.Context, req MergeOrdersRequest) (*OrderResponse, error) {
	var response *OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		target, err := repos.OrderRepo().FindByID(ctx, req.TargetOrderID)
		if err != nil {
			return err
		}
		source, err := repos.OrderRepo().FindByID(ctx, req.SourceOrderID)
		if err != nil {
			return err
		}

		if err := target.MergeFrom(source); err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, target); err != nil {
			return err
		}
		if err := repos.OrderRepo().Delete(ctx, source.ID); err != nil {
			return err
		}

		if source.TableID != nil && (target.TableID == nil || *source.TableID != *target.TableID) {
			if err := s.releaseTable(ctx, repos.TableRepo(), *source.TableID); err != nil {
				return err
			}
		}

		response = NewOrderResponse(target)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// Checkout settles and closes an order, releasing its table
func (s *OrderService) Checkout(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.close(ctx, id, (*dining.Order).Checkout)
}

// Cancel voids an order, releasing its table
func (s *OrderService) Cancel(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	return s.close(ctx, id, (*dining.Order).Cancel)
}

func (s *OrderService) close(ctx context.Context, id uuid.UUID, transition func(*dining.Order) error) (*OrderResponse, error) {
	var response *OrderResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := transition(order); err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}

		if order.TableID != nil {
			if err := s.releaseTable(ctx, repos.TableRepo(), *order.TableID); err != nil {
				return err
			}
		}

		response = NewOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *OrderService) releaseTable(ctx context.Context, tableRepo dining.TableRepository, tableID uuid.UUID) error {
	table, err := tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return err
	}
	table.Release()
	return tableRepo.Save(ctx, table)
}

// Fulfill consumes the stock behind an order's lines, FIFO per ingredient, in
// the same transaction that marks the order fulfilled. Ingredient quantities
// scale with line quantities and aggregate across lines before depletion.
func (s *OrderService) Fulfill(ctx context.Context, id uuid.UUID) (*FulfillOrderResponse, error) {
	var (
		response *FulfillOrderResponse
		consumed []*inventory.Item
	)

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := order.MarkFulfilled(); err != nil {
			return err
		}

		consumeReq, err := s.buildConsumption(ctx, repos.MenuItemRepo(), order)
		if err != nil {
			return err
		}

		var consumption *inventoryapp.ConsumeResponse
		if len(consumeReq.Items) > 0 {
			consumption, consumed, err = inventoryapp.ConsumeWithRepos(ctx, repos.ItemRepo(), repos.BatchRepo(), consumeReq)
			if err != nil {
				return err
			}
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}

		response = &FulfillOrderResponse{
			Order:       NewOrderResponse(order),
			Consumption: consumption,
		}
		return nil
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

// buildConsumption aggregates the order's ingredient demand per inventory item
func (s *OrderService) buildConsumption(ctx context.Context, menuRepo dining.MenuItemRepository, order *dining.Order) (inventoryapp.ConsumeRequest, error) {
	menuIDs := make([]uuid.UUID, 0, len(order.Items))
	for idx := range order.Items {
		menuIDs = append(menuIDs, order.Items[idx].MenuItemID)
	}

	menuItems, err := menuRepo.FindByIDs(ctx, menuIDs)
	if err != nil {
		return inventoryapp.ConsumeRequest{}, err
	}
	byID := make(map[uuid.UUID]*dining.MenuItem, len(menuItems))
	for idx := range menuItems {
		byID[menuItems[idx].ID] = &menuItems[idx]
	}

	demand := make(map[uuid.UUID]decimal.Decimal)
	ordered := make([]uuid.UUID, 0)
	for idx := range order.Items {
		line := &order.Items[idx]
		menuItem, ok := byID[line.MenuItemID]
		if !ok {
			// menu item deleted since placement; its recipe is gone
			continue
		}
		qty := decimal.NewFromInt(int64(line.Quantity))
		for _, ing := range menuItem.Ingredients {
			if _, seen := demand[ing.InventoryItemID]; !seen {
				ordered = append(ordered, ing.InventoryItemID)
			}
			demand[ing.InventoryItemID] = demand[ing.InventoryItemID].Add(ing.Quantity.Mul(qty))
		}
	}

	req := inventoryapp.ConsumeRequest{Items: make([]inventoryapp.ConsumeLine, 0, len(ordered))}
	for _, itemID := range ordered {
		req.Items = append(req.Items, inventoryapp.ConsumeLine{
			ItemID:   itemID,
			Quantity: demand[itemID],
		})
	}

	return req, nil
}

func (s *OrderService) resolveLines(ctx context.Context, menuRepo dining.MenuItemRepository, reqs []OrderLineRequest) ([]dining.OrderLine, error) {
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.MenuItemID)
	}

	menuItems, err := menuRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*dining.MenuItem, len(menuItems))
	for idx := range menuItems {
		byID[menuItems[idx].ID] = &menuItems[idx]
	}

	lines := make([]dining.OrderLine, 0, len(reqs))
	for _, req := range reqs {
		menuItem, ok := byID[req.MenuItemID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", "Menu item not found")
		}
		if !menuItem.Available {
			return nil, shared.NewDomainError("MENU_ITEM_UNAVAILABLE", "Menu item is not available: "+menuItem.Title)
		}
		lines = append(lines, dining.OrderLine{
			MenuItemID:  menuItem.ID,
			Title:       menuItem.Title,
			SectionID:   menuItem.SectionID,
			Quantity:    req.Quantity,
			UnitPrice:   menuItem.Price,
			ExtrasPrice: req.ExtrasPrice,
			Notes:       strings.TrimSpace(req.Notes),
		})
	}

	return lines, nil
}

// randomDigits returns a random numeric string of the given length
func randomDigits(n int) (string, error) {
	digits := make([]byte, n)
	for idx := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[idx] = byte('0' + v.Int64())
	}
	return string(digits), nil
}
