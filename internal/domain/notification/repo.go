package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/medidash/medidash/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	List(ctx context.Context, p pagination.Params) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
}
