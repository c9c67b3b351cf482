package department

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) validate(d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func (s *Service) CreateDepartment(ctx context.Context, d *Department) error {
	if err := s.validate(d); err != nil {
		return err
	}
	return s.repo.Create(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateDepartment(ctx context.Context, d *Department) error {
	if err := s.validate(d); err != nil {
		return err
	}
	return s.repo.Update(ctx, d)
}

func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]*Department, error) {
	return s.repo.List(ctx)
}
