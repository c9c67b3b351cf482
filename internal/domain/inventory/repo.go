package inventory

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, i *InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error)
	// FindByName matches case-insensitively; fulfillment looks items up by
	// the prescribed medicine name.
	FindByName(ctx context.Context, name string) (*InventoryItem, error)
	Update(ctx context.Context, i *InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*InventoryItem, error)
}
