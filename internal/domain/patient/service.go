package patient

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	if p.Gender != "" && !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	if p.Phone != "" && !phonePattern.MatchString(p.Phone) {
		return fmt.Errorf("phone must be 10 digits")
	}
	if p.AdmitDate != nil && *p.AdmitDate != "" && !datePattern.MatchString(*p.AdmitDate) {
		return fmt.Errorf("admit date must be YYYY-MM-DD")
	}
	if p.DischargeDate != nil && *p.DischargeDate != "" && !datePattern.MatchString(*p.DischargeDate) {
		return fmt.Errorf("discharge date must be YYYY-MM-DD")
	}
	if p.PaymentStatus != nil && *p.PaymentStatus != "" &&
		*p.PaymentStatus != PaymentPaid && *p.PaymentStatus != PaymentUnpaid {
		return fmt.Errorf("invalid payment status: %s", *p.PaymentStatus)
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}
