package leave

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

const leaveCols = `id, doctor_id, start_date, end_date, reason, status, request_date, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, l *LeaveRequest) error {
	l.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO leave_request (id, doctor_id, start_date, end_date, reason, status, request_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		l.ID, l.DoctorID, l.StartDate, l.EndDate, l.Reason, l.Status, l.RequestDate,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LeaveRequest, error) {
	return scanLeave(r.conn(ctx).QueryRow(ctx, `SELECT `+leaveCols+` FROM leave_request WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, l *LeaveRequest) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE leave_request SET start_date=$2, end_date=$3, reason=$4, status=$5, updated_at=NOW()
		WHERE id = $1`,
		l.ID, l.StartDate, l.EndDate, l.Reason, l.Status,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM leave_request WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*LeaveRequest, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+leaveCols+` FROM leave_request ORDER BY request_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, l)
	}
	return requests, rows.Err()
}

func scanLeave(row pgx.Row) (*LeaveRequest, error) {
	var l LeaveRequest
	err := row.Scan(&l.ID, &l.DoctorID, &l.StartDate, &l.EndDate, &l.Reason, &l.Status,
		&l.RequestDate, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
