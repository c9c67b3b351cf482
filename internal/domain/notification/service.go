package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medidash/medidash/pkg/pagination"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateNotification(ctx context.Context, n *Notification) error {
	if !validTypes[n.Type] {
		return fmt.Errorf("invalid notification type: %s", n.Type)
	}
	if n.Message == "" {
		return fmt.Errorf("message is required")
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	return s.repo.Create(ctx, n)
}

// Notify is the convenience entry other services use to push feed entries.
func (s *Service) Notify(ctx context.Context, typ, message, linkTo string) error {
	return s.CreateNotification(ctx, &Notification{Type: typ, Message: message, LinkTo: linkTo})
}

func (s *Service) ListNotifications(ctx context.Context, p pagination.Params) ([]*Notification, error) {
	return s.repo.List(ctx, p)
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
