package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medidash/medidash/pkg/pagination"
)

type mockRepo struct {
	created []*Notification
}

func (m *mockRepo) Create(_ context.Context, n *Notification) error {
	n.ID = uuid.New()
	m.created = append(m.created, n)
	return nil
}

func (m *mockRepo) List(_ context.Context, _ pagination.Params) ([]*Notification, error) {
	return m.created, nil
}
func (m *mockRepo) MarkRead(_ context.Context, id uuid.UUID) error  { return nil }
func (m *mockRepo) MarkAllRead(_ context.Context) error             { return nil }

func TestNotifyStampsTimestamp(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	if err := svc.Notify(context.Background(), TypeInfo, "Backup completed", ""); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("got %d notifications, want 1", len(repo.created))
	}
	n := repo.created[0]
	if n.Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
	if n.Read {
		t.Error("new notification must start unread")
	}
}

func TestCreateNotificationValidation(t *testing.T) {
	svc := NewService(&mockRepo{})
	ctx := context.Background()

	if err := svc.CreateNotification(ctx, &Notification{Type: "Gossip", Message: "x"}); err == nil {
		t.Error("expected error for unknown type")
	}
	if err := svc.CreateNotification(ctx, &Notification{Type: TypeLowStock}); err == nil {
		t.Error("expected error for empty message")
	}
}
