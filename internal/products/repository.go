package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/janinaluoto-sys/VibeTestingInventoryApp/internal/platform/db"
)

// Repository is the data-access contract of the products table. Update,
// UpdateQuantity and Delete report the number of changed rows; zero means the
// id does not exist.
type Repository interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id int64) (Product, error)
	Insert(ctx context.Context, product Product) (int64, error)
	InsertBatch(ctx context.Context, products []Product) error
	Update(ctx context.Context, id int64, product Product) (int64, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// DBTX is the subset of *pgxpool.Pool used by the repository.
type DBTX interface {
	db.Beginner
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectColumns = `SELECT id, name, category, price, quantity, description, image FROM products`
	insertProduct = `INSERT INTO products (name, category, price, quantity, description, image) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
)

type repository struct {
	db DBTX
}

// NewRepository returns a Repository backed by PostgreSQL.
func NewRepository(db DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, selectColumns+` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, selectColumns+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *repository) Insert(ctx context.Context, p Product) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertProduct, p.Name, p.Category, p.Price, p.Quantity, p.Description, p.Image).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertBatch inserts all products in one transaction; either every row is committed or none.
func (r *repository) InsertBatch(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, p := range products {
			batch.Queue(insertProduct, p.Name, p.Category, p.Price, p.Quantity, p.Description, p.Image)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert batch: %w", err)
		}
		return nil
	})
}

func (r *repository) Update(ctx context.Context, id int64, p Product) (int64, error) {
	query := `UPDATE products SET name = $1, category = $2, price = $3, quantity = $4, description = $5, image = $6 WHERE id = $7`
	tag, err := r.db.Exec(ctx, query, p.Name, p.Category, p.Price, p.Quantity, p.Description, p.Image, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE products SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.Description, &p.Image)
	return p, err
}
