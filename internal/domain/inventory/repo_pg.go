package inventory

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

const itemCols = `id, name, stock, supplier, price, expiry_date, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, i *InventoryItem) error {
	i.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO inventory_item (id, name, stock, supplier, price, expiry_date)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		i.ID, i.Name, i.Stock, i.Supplier, i.Price, i.ExpiryDate,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	return scanItem(r.conn(ctx).QueryRow(ctx, `SELECT `+itemCols+` FROM inventory_item WHERE id = $1`, id))
}

func (r *repoPG) FindByName(ctx context.Context, name string) (*InventoryItem, error) {
	return scanItem(r.conn(ctx).QueryRow(ctx,
		`SELECT `+itemCols+` FROM inventory_item WHERE LOWER(name) = LOWER($1)`, name))
}

func (r *repoPG) Update(ctx context.Context, i *InventoryItem) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE inventory_item SET name=$2, stock=$3, supplier=$4, price=$5,
			expiry_date=$6, updated_at=NOW()
		WHERE id = $1`,
		i.ID, i.Name, i.Stock, i.Supplier, i.Price, i.ExpiryDate,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM inventory_item WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context) ([]*InventoryItem, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+itemCols+` FROM inventory_item ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*InventoryItem, error) {
	var i InventoryItem
	err := row.Scan(&i.ID, &i.Name, &i.Stock, &i.Supplier, &i.Price, &i.ExpiryDate, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
