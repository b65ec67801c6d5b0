package purchasing

import (
	"context"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PurchaseRepository defines the interface for purchase persistence
type PurchaseRepository interface {
	// FindByID finds a purchase with its line items
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)

	// FindByInvoiceNumber finds a purchase by invoice number
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*Purchase, error)

	// FindBySupplier finds all purchases from a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]Purchase, error)

	// FindAll finds purchases matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Purchase, error)

	// Count counts purchases matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByInvoiceNumber checks whether an invoice number is already taken
	ExistsByInvoiceNumber(ctx context.Context, invoiceNumber string) (bool, error)

	// Save creates or updates a purchase together with its line items
	Save(ctx context.Context, purchase *Purchase) error

	// DeleteLineItems removes the purchase's current line items; used before
	// Save when an update replaces the lines wholesale
	DeleteLineItems(ctx context.Context, purchaseID uuid.UUID) error

	// Delete deletes a purchase and its line items
	Delete(ctx context.Context, id uuid.UUID) error
}
