package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/storefront-account/internal/order"
	"github.com/MikeMC777/storefront-account/internal/product"
	"github.com/MikeMC777/storefront-account/internal/warranty"
)

// PGRepo reads the customer's orders straight from the order database. It is
// the same collaborator as Ext for deployments next to the database.
type PGRepo struct {
	db     querier
	userID string
}

// querier is the part of *pgxpool.Pool the repo uses.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

var _ querier = (*pgxpool.Pool)(nil)

func NewPGRepo(db *pgxpool.Pool, userID string) *PGRepo { return &PGRepo{db: db, userID: userID} }

func (r *PGRepo) FetchOrders(ctx context.Context) ([]order.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, user_id, status, total_price::text, total::text, address, phone,
           COALESCE(note, ''), created_at, updated_at
    FROM orders WHERE user_id=$1
    ORDER BY created_at DESC
  `, r.userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		items, err := r.items(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

func (r *PGRepo) RequestStatusChange(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
    UPDATE orders
    SET status = $3, updated_at = NOW()
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, status, total_price::text, total::text, address, phone,
              COALESCE(note, ''), created_at, updated_at
  `, id, r.userID, int(status))
	o, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	items, err := r.items(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *PGRepo) RequestDeletion(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// items first, so the order_items foreign key never points at a removed order
	if _, err := tx.Exec(ctx, `
    DELETE FROM order_items
    WHERE order_id = $1
      AND EXISTS (SELECT 1 FROM orders WHERE id = $1 AND user_id = $2 AND status = $3)
  `, id, r.userID, int(order.StatusCancelled)); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `
    DELETE FROM orders WHERE id = $1 AND user_id = $2 AND status = $3
  `, id, r.userID, int(order.StatusCancelled))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) FetchWarrantyRecords(ctx context.Context) ([]warranty.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT o.id, i.product_name, COALESCE(o.updated_at, o.created_at),
           COALESCE(i.warranty_months, $3)
    FROM orders o JOIN order_items i ON i.order_id = o.id
    WHERE o.user_id = $1 AND o.status = $2
    ORDER BY o.created_at DESC
  `, r.userID, int(order.StatusDelivered), product.DefaultWarrantyMonths)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []warranty.Record
	for rows.Next() {
		var rec warranty.Record
		if err := rows.Scan(&rec.OrderID, &rec.ProductName, &rec.PurchaseDate, &rec.WarrantyMonths); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PGRepo) items(ctx context.Context, orderID string) ([]order.Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT COALESCE(product_id::text, ''), product_name, COALESCE(category_name, ''), specs, warranty_months,
           COALESCE(color, ''), COALESCE(ram, ''), COALESCE(storage, ''), quantity, price::text
    FROM order_items
    WHERE order_id = $1
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var (
			it     order.Item
			p      product.Product
			specs  []byte
			months *int
			qty    *int
			price  *string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category.Name, &specs, &months,
			&it.Color, &it.RAM, &it.Storage, &qty, &price); err != nil {
			return nil, err
		}
		if len(specs) > 0 {
			if err := json.Unmarshal(specs, &p.Specs); err != nil {
				return nil, err
			}
		}
		p.WarrantyMonths = months
		it.Product = &p
		it.Quantity = qty
		it.Price = parseAmount(price)
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		o                 order.Order
		status            int
		totalPrice, total *string
		updatedAt         *time.Time
	)
	err := row.Scan(&o.ID, &o.UserID, &status, &totalPrice, &total, &o.Address, &o.Phone,
		&o.Note, &o.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	if o.Status, err = order.ParseStatus(status); err != nil {
		return nil, fmt.Errorf("%w: order %s: %w", ErrRemote, o.ID, err)
	}
	o.TotalPrice = parseAmount(totalPrice)
	o.Total = parseAmount(total)
	if updatedAt != nil {
		o.UpdatedAt = *updatedAt
	}
	return &o, nil
}

// parseAmount maps a NUMERIC column read as text to an optional amount.
func parseAmount(s *string) order.Amount {
	if s == nil {
		return order.Amount{}
	}
	var a order.Amount
	_ = a.UnmarshalJSON([]byte(*s))
	return a
}
