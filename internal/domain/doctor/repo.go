package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*Doctor, error)

	// Availability slots
	GetSlots(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilitySlot, error)
	ReplaceSlots(ctx context.Context, doctorID uuid.UUID, slots []*AvailabilitySlot) error
}
