package inventory

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

func (s *Service) validate(i *InventoryItem) error {
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	if i.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

func (s *Service) CreateItem(ctx context.Context, i *InventoryItem) error {
	if err := s.validate(i); err != nil {
		return err
	}
	return s.repo.Create(ctx, i)
}

func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateItem(ctx context.Context, i *InventoryItem) error {
	if err := s.validate(i); err != nil {
		return err
	}
	return s.repo.Update(ctx, i)
}

func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListItems(ctx context.Context) ([]*InventoryItem, error) {
	return s.repo.List(ctx)
}

// ReorderList returns the items whose derived status is low or out of stock.
func (s *Service) ReorderList(ctx context.Context) ([]*InventoryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var reorder []*InventoryItem
	for _, item := range items {
		if StockStatus(item.Stock) != StockIn {
			reorder = append(reorder, item)
		}
	}
	return reorder, nil
}
