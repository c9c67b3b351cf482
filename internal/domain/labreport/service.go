package labreport

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(r *LabReport) error {
	if r.TestName == "" {
		return fmt.Errorf("test name is required")
	}
	if r.ReportDate != "" && !datePattern.MatchString(r.ReportDate) {
		return fmt.Errorf("report date must be YYYY-MM-DD")
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if !validStatuses[r.Status] {
		return fmt.Errorf("invalid status: %s", r.Status)
	}
	if r.SampleStatus == "" {
		r.SampleStatus = SampleCollected
	}
	if _, ok := sampleStage[r.SampleStatus]; !ok {
		return fmt.Errorf("invalid sample status: %s", r.SampleStatus)
	}
	if r.TestFee < 0 {
		return fmt.Errorf("test fee must not be negative")
	}
	if r.PaymentStatus == "" {
		r.PaymentStatus = PaymentUnpaid
	}
	if r.PaymentStatus != PaymentPaid && r.PaymentStatus != PaymentUnpaid {
		return fmt.Errorf("invalid payment status: %s", r.PaymentStatus)
	}
	return nil
}

func (s *Service) CreateReport(ctx context.Context, r *LabReport) error {
	if err := s.validate(r); err != nil {
		return err
	}
	now := time.Now()
	if r.ReportNumber == "" {
		r.ReportNumber = fmt.Sprintf("LR-%d", now.Unix())
	}
	if r.SampleID == "" {
		r.SampleID = fmt.Sprintf("SMP-%d", now.Unix())
	}
	if r.ReportDate == "" {
		r.ReportDate = now.UTC().Format("2006-01-02")
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*LabReport, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateReport replaces the report. The sample pipeline only moves forward:
// an update that would rewind the sample status is rejected. Report status
// carries no such restriction.
func (s *Service) UpdateReport(ctx context.Context, r *LabReport) error {
	if err := s.validate(r); err != nil {
		return err
	}
	existing, err := s.repo.GetByID(ctx, r.ID)
	if err != nil {
		return err
	}
	if sampleStage[r.SampleStatus] < sampleStage[existing.SampleStatus] {
		return fmt.Errorf("sample status cannot move back from %s to %s", existing.SampleStatus, r.SampleStatus)
	}
	r.ReportNumber = existing.ReportNumber
	r.SampleID = existing.SampleID
	return s.repo.Update(ctx, r)
}

func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListReports(ctx context.Context) ([]*LabReport, error) {
	return s.repo.List(ctx)
}
