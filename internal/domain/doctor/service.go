package doctor

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	if d.Phone != "" && !phonePattern.MatchString(d.Phone) {
		return fmt.Errorf("phone must be 10 digits")
	}
	return nil
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := s.validate(d); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return err
	}
	// Slots supplied on create are persisted in the same call.
	if len(d.Availability) > 0 {
		for _, slot := range d.Availability {
			if err := slot.Validate(); err != nil {
				return err
			}
		}
		return s.repo.ReplaceSlots(ctx, d.ID, d.Availability)
	}
	return nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if err := s.validate(d); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetAvailability(ctx context.Context, doctorID uuid.UUID) ([]*AvailabilitySlot, error) {
	return s.repo.GetSlots(ctx, doctorID)
}

// SetAvailability replaces the doctor's full weekly slot set.
func (s *Service) SetAvailability(ctx context.Context, doctorID uuid.UUID, slots []*AvailabilitySlot) error {
	if _, err := s.repo.GetByID(ctx, doctorID); err != nil {
		return fmt.Errorf("doctor not found: %w", err)
	}
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return err
		}
	}
	return s.repo.ReplaceSlots(ctx, doctorID, slots)
}
