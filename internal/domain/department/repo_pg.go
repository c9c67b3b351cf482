package department

import (
	"context"

	"github.com/google/uuid"
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

const departmentCols = `id, name, head_doctor_id, description, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, d *Department) error {
	d.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO department (id, name, head_doctor_id, description)
		VALUES ($1,$2,$3,$4)`,
		d.ID, d.Name, d.Head, d.Description,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	return scanDepartment(r.conn(ctx).QueryRow(ctx, `SELECT `+departmentCols+` FROM department WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, d *Department) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE department SET name=$2, head_doctor_id=$3, description=$4, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.Name, d.Head, d.Description,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*Department, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+departmentCols+` FROM department ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Head, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, &d)
	}
	return departments, rows.Err()
}

func scanDepartment(row pgx.Row) (*Department, error) {
	var d Department
	if err := row.Scan(&d.ID, &d.Name, &d.Head, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
