package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medidash/medidash/internal/platform/db"
	"github.com/medidash/medidash/pkg/pagination"
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

func (r *repoPG) Create(ctx context.Context, n *Notification) error {
	n.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO notification (id, type, message, timestamp, read, link_to)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		n.ID, n.Type, n.Message, n.Timestamp, n.Read, n.LinkTo,
	)
	return err
}

func (r *repoPG) List(ctx context.Context, p pagination.Params) ([]*Notification, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, type, message, timestamp, read, link_to
		FROM notification ORDER BY timestamp DESC `+p.SQL())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.Timestamp, &n.Read, &n.LinkTo); err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

func (r *repoPG) MarkRead(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE notification SET read = TRUE WHERE id = $1`, id)
	return err
}

func (r *repoPG) MarkAllRead(ctx context.Context) error {
	_, err := r.conn(ctx).Exec(ctx, `UPDATE notification SET read = TRUE WHERE read = FALSE`)
	return err
}
