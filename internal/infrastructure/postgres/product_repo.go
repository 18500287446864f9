package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kiranabill/backend/internal/domain"
)

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) domain.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) List(ctx context.Context) ([]domain.CatalogProduct, error) {
	var products []domain.CatalogProduct
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, price, category, stock, created_at
		 FROM products
		 ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*domain.CatalogProduct, error) {
	var product domain.CatalogProduct
	err := r.db.GetContext(ctx, &product,
		`SELECT id, name, price, category, stock, created_at
		 FROM products WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, p *domain.CatalogProduct) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO products (name, price, category, stock)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		p.Name, p.Price, p.Category, p.Stock).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

func (r *productRepo) Update(ctx context.Context, p *domain.CatalogProduct) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products
		 SET name = $1, price = $2, category = $3, stock = $4
		 WHERE id = $5`,
		p.Name, p.Price, p.Category, p.Stock, p.ID)
	if err != nil {
		return fmt.Errorf("updating product %d: %w", p.ID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating product %d: %w", p.ID, err)
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepo) SearchByName(ctx context.Context, query string) ([]domain.CatalogProduct, error) {
	var products []domain.CatalogProduct
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, price, category, stock, created_at
		 FROM products
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY name ASC`, query)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	return products, nil
}
