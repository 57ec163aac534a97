package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const itemCols = `id, name, category, unit, stock, reorder_level, unit_cost, supplier,
	expiry_date, created_at, updated_at`

func scanItem(row pgx.Row) (*Item, error) {
	var i Item
	err := row.Scan(&i.ID, &i.Name, &i.Category, &i.Unit, &i.Stock, &i.ReorderLevel,
		&i.UnitCost, &i.Supplier, &i.ExpiryDate, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repoPG) Create(ctx context.Context, item *Item) error {
	item.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inventory_items (id, name, category, unit, stock, reorder_level,
			unit_cost, supplier, expiry_date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		item.ID, item.Name, item.Category, item.Unit, item.Stock, item.ReorderLevel,
		item.UnitCost, item.Supplier, item.ExpiryDate, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	return scanItem(r.pool.QueryRow(ctx,
		`SELECT `+itemCols+` FROM inventory_items WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, item *Item) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE inventory_items
		SET name = $2, category = $3, unit = $4, stock = $5, reorder_level = $6,
			unit_cost = $7, supplier = $8, expiry_date = $9, updated_at = $10
		WHERE id = $1`,
		item.ID, item.Name, item.Category, item.Unit, item.Stock, item.ReorderLevel,
		item.UnitCost, item.Supplier, item.ExpiryDate, item.UpdatedAt)
	return err
}

func (r *repoPG) List(ctx context.Context, category string, limit, offset int) ([]*Item, int, error) {
	where, args := "", []any{}
	if category != "" {
		where = " WHERE category = $1"
		args = append(args, category)
	}
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	args = append(args, limit, offset)
	rows, err := r.pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM inventory_items%s ORDER BY name LIMIT $%d OFFSET $%d`,
		itemCols, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	items, err := collectItems(rows)
	return items, total, err
}

func (r *repoPG) ListLowStock(ctx context.Context) ([]*Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemCols+` FROM inventory_items WHERE stock <= reorder_level ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *repoPG) ListExpiring(ctx context.Context, before time.Time) ([]*Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemCols+` FROM inventory_items
		WHERE expiry_date IS NOT NULL AND expiry_date <= $1
		ORDER BY expiry_date`, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *repoPG) AddMovement(ctx context.Context, m *Movement) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO inventory_movements (id, item_id, delta, reason, stock_after, recorded_by, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		m.ID, m.ItemID, m.Delta, m.Reason, m.StockAfter, m.RecordedBy, m.RecordedAt)
	return err
}

func (r *repoPG) GetMovements(ctx context.Context, itemID uuid.UUID, limit, offset int) ([]*Movement, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_movements WHERE item_id = $1`, itemID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, item_id, delta, reason, stock_after, recorded_by, recorded_at
		FROM inventory_movements
		WHERE item_id = $1
		ORDER BY recorded_at DESC LIMIT $2 OFFSET $3`, itemID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var movements []*Movement
	for rows.Next() {
		var m Movement
		if err := rows.Scan(&m.ID, &m.ItemID, &m.Delta, &m.Reason, &m.StockAfter,
			&m.RecordedBy, &m.RecordedAt); err != nil {
			return nil, 0, err
		}
		movements = append(movements, &m)
	}
	return movements, total, rows.Err()
}

func collectItems(rows pgx.Rows) ([]*Item, error) {
	var items []*Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
