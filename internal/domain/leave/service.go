package leave

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/medidash/medidash/internal/domain/notification"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	repo     Repository
	notifier *notification.Service
}

func NewService(repo Repository, notifier *notification.Service) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) validate(l *LeaveRequest) error {
	if !datePattern.MatchString(l.StartDate) {
		return fmt.Errorf("start date must be YYYY-MM-DD")
	}
	if !datePattern.MatchString(l.EndDate) {
		return fmt.Errorf("end date must be YYYY-MM-DD")
	}
	if l.StartDate > l.EndDate {
		return fmt.Errorf("start date %s must not be after end date %s", l.StartDate, l.EndDate)
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	if !validStatuses[l.Status] {
		return fmt.Errorf("invalid status: %s", l.Status)
	}
	return nil
}

func (s *Service) CreateLeaveRequest(ctx context.Context, l *LeaveRequest) error {
	if err := s.validate(l); err != nil {
		return err
	}
	l.Status = StatusPending
	if l.RequestDate == "" {
		l.RequestDate = time.Now().UTC().Format("2006-01-02")
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return err
	}
	if s.notifier != nil {
		msg := fmt.Sprintf("Leave requested from %s to %s", l.StartDate, l.EndDate)
		if nerr := s.notifier.Notify(ctx, notification.TypeLeaveRequest, msg, "/leave-requests"); nerr != nil {
			log.Warn().Err(nerr).Msg("failed to create leave request notification")
		}
	}
	return nil
}

func (s *Service) GetLeaveRequest(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateLeaveRequest replaces the request. Once a request is Approved or
// Rejected its status is settled and any further status change is refused.
func (s *Service) UpdateLeaveRequest(ctx context.Context, l *LeaveRequest) error {
	if err := s.validate(l); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, l.ID)
	if err != nil {
		return err
	}
	if existing.Status != StatusPending && l.Status != existing.Status {
		return fmt.Errorf("leave request is already %s", existing.Status)
	}
	l.RequestDate = existing.RequestDate
	return s.repo.Update(ctx, l)
}

func (s *Service) DeleteLeaveRequest(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListLeaveRequests(ctx context.Context) ([]*LeaveRequest, error) {
	return s.repo.List(ctx)
}
