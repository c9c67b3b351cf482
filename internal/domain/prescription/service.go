package prescription

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/medidash/medidash/internal/domain/inventory"
	"github.com/medidash/medidash/internal/domain/notification"
	"github.com/medidash/medidash/internal/platform/db"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Service struct {
	repo     Repository
	items    inventory.Repository
	notifier *notification.Service
	pool     *pgxpool.Pool
}

// NewService wires the prescription workflow. pool may be nil in tests, in
// which case Fulfill runs its steps without a surrounding transaction.
func NewService(repo Repository, items inventory.Repository, notifier *notification.Service, pool *pgxpool.Pool) *Service {
	return &Service{repo: repo, items: items, notifier: notifier, pool: pool}
}

func (s *Service) validate(p *Prescription) error {
	if p.MedicineName == "" {
		return fmt.Errorf("medicine name is required")
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if p.DateIssued != "" && !datePattern.MatchString(p.DateIssued) {
		return fmt.Errorf("date issued must be YYYY-MM-DD")
	}
	if p.Status == "" {
		p.Status = StatusIssued
	}
	if p.Status != StatusIssued && p.Status != StatusFulfilled {
		return fmt.Errorf("invalid status: %s", p.Status)
	}
	return nil
}

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) error {
	if err := s.validate(p); err != nil {
		return err
	}
	if p.DateIssued == "" {
		p.DateIssued = time.Now().UTC().Format("2006-01-02")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPrescription(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdatePrescription(ctx context.Context, p *Prescription) error {
	if err := s.validate(p); err != nil {
		return err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*Prescription, error) {
	return s.repo.List(ctx)
}

// Fulfill dispenses a prescription against pharmacy stock: it matches the
// inventory item by medicine name, rejects when stock is short, decrements
// the stock and marks the prescription fulfilled with its billed amount.
// Stock check, decrement and prescription update share one transaction so a
// failure leaves both rows untouched.
func (s *Service) Fulfill(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	var fulfilled *Prescription

	run := func(ctx context.Context) error {
		p, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("prescription not found: %w", err)
		}
		if p.Status == StatusFulfilled {
			return fmt.Errorf("prescription already fulfilled")
		}

		item, err := s.items.FindByName(ctx, p.MedicineName)
		if err != nil {
			return fmt.Errorf("medicine %q not found in inventory", p.MedicineName)
		}
		if item.Stock < p.Quantity {
			return fmt.Errorf("insufficient stock for %s: have %d, need %d", item.Name, item.Stock, p.Quantity)
		}

		prevStatus := inventory.StockStatus(item.Stock)
		item.Stock -= p.Quantity
		if err := s.items.Update(ctx, item); err != nil {
			return err
		}

		today := time.Now().UTC().Format("2006-01-02")
		total := float64(p.Quantity) * item.Price
		unpaid := PaymentUnpaid
		p.Status = StatusFulfilled
		p.DateFulfilled = &today
		p.TotalAmount = &total
		p.PaymentStatus = &unpaid
		if err := s.repo.Update(ctx, p); err != nil {
			return err
		}

		fulfilled = p
		// Notify only when this decrement crosses into Low Stock; items
		// already low stay quiet.
		if s.notifier != nil && inventory.StockStatus(item.Stock) == inventory.StockLow && prevStatus != inventory.StockLow {
			msg := fmt.Sprintf("%s is now low on stock (%d units left).", item.Name, item.Stock)
			if nerr := s.notifier.Notify(ctx, notification.TypeLowStock, msg, "/inventory"); nerr != nil {
				log.Warn().Err(nerr).Str("item", item.Name).Msg("failed to create low stock notification")
			}
		}
		return nil
	}

	var err error
	if s.pool != nil {
		err = db.WithTx(ctx, s.pool, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return nil, err
	}
	return fulfilled, nil
}
