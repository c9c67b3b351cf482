package leave

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type mockRepo struct {
	requests map[uuid.UUID]*LeaveRequest
}

func newMockRepo() *mockRepo {
	return &mockRepo{requests: make(map[uuid.UUID]*LeaveRequest)}
}

func (m *mockRepo) Create(_ context.Context, l *LeaveRequest) error {
	l.ID = uuid.New()
	cp := *l
	m.requests[cp.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*LeaveRequest, error) {
	l, ok := m.requests[id]
	if !ok {
		return nil, fmt.Errorf("no leave request %s", id)
	}
	cp := *l
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, l *LeaveRequest) error {
	cp := *l
	m.requests[cp.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.requests, id)
	return nil
}

func (m *mockRepo) List(_ context.Context) ([]*LeaveRequest, error) {
	out := make([]*LeaveRequest, 0, len(m.requests))
	for _, l := range m.requests {
		out = append(out, l)
	}
	return out, nil
}

func pendingRequest(t *testing.T, svc *Service) *LeaveRequest {
	t.Helper()
	l := &LeaveRequest{
		DoctorID:  uuid.New(),
		StartDate: "2024-09-01",
		EndDate:   "2024-09-05",
		Reason:    "Conference",
	}
	if err := svc.CreateLeaveRequest(context.Background(), l); err != nil {
		t.Fatalf("create leave request: %v", err)
	}
	return l
}

func TestCreateLeaveRequestDefaults(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	l := pendingRequest(t, svc)

	if l.Status != StatusPending {
		t.Fatalf("status = %q, want Pending", l.Status)
	}
	if l.RequestDate == "" {
		t.Fatal("request date not defaulted")
	}
}

func TestCreateLeaveRequestDateOrdering(t *testing.T) {
	svc := NewService(newMockRepo(), nil)

	l := &LeaveRequest{DoctorID: uuid.New(), StartDate: "2024-09-10", EndDate: "2024-09-05"}
	if err := svc.CreateLeaveRequest(context.Background(), l); err == nil {
		t.Fatal("expected error when start date is after end date")
	}

	// Single-day leave is valid.
	l = &LeaveRequest{DoctorID: uuid.New(), StartDate: "2024-09-05", EndDate: "2024-09-05"}
	if err := svc.CreateLeaveRequest(context.Background(), l); err != nil {
		t.Fatalf("single-day leave rejected: %v", err)
	}
}

func TestApprovalIsTerminal(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	l := pendingRequest(t, svc)

	l.Status = StatusApproved
	if err := svc.UpdateLeaveRequest(context.Background(), l); err != nil {
		t.Fatalf("approving a pending request failed: %v", err)
	}

	l.Status = StatusRejected
	if err := svc.UpdateLeaveRequest(context.Background(), l); err == nil {
		t.Fatal("expected rejection of status change after approval")
	}

	l.Status = StatusPending
	if err := svc.UpdateLeaveRequest(context.Background(), l); err == nil {
		t.Fatal("expected rejection when reopening an approved request")
	}

	// Editing other fields while keeping the settled status is allowed.
	l.Status = StatusApproved
	l.Reason = "Conference, extended"
	if err := svc.UpdateLeaveRequest(context.Background(), l); err != nil {
		t.Fatalf("same-status edit rejected: %v", err)
	}
}

func TestRejectionIsTerminal(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	l := pendingRequest(t, svc)

	l.Status = StatusRejected
	if err := svc.UpdateLeaveRequest(context.Background(), l); err != nil {
		t.Fatalf("rejecting a pending request failed: %v", err)
	}
	l.Status = StatusApproved
	if err := svc.UpdateLeaveRequest(context.Background(), l); err == nil {
		t.Fatal("expected rejection of approval after the request was rejected")
	}
}
