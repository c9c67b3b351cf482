package settings

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medidash/medidash/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

// The table holds exactly one row, keyed by a constant id.

func (r *repoPG) Get(ctx context.Context) (*ClinicSettings, error) {
	var s ClinicSettings
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT name, logo, address, phone, email, gst_number, gst_rate, updated_at
		FROM clinic_settings WHERE id = 1`).Scan(
		&s.Name, &s.Logo, &s.Address, &s.Phone, &s.Email, &s.GSTNumber, &s.GSTRate, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repoPG) Upsert(ctx context.Context, s *ClinicSettings) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO clinic_settings (id, name, logo, address, phone, email, gst_number, gst_rate)
		VALUES (1,$1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE SET
			name=EXCLUDED.name, logo=EXCLUDED.logo, address=EXCLUDED.address,
			phone=EXCLUDED.phone, email=EXCLUDED.email, gst_number=EXCLUDED.gst_number,
			gst_rate=EXCLUDED.gst_rate, updated_at=NOW()`,
		s.Name, s.Logo, s.Address, s.Phone, s.Email, s.GSTNumber, s.GSTRate,
	)
	return err
}
