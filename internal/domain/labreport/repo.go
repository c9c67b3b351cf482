package labreport

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *LabReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*LabReport, error)
	Update(ctx context.Context, r *LabReport) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*LabReport, error)
}
