package domain

import "context"

// ProductRepository defines persistence operations for the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]CatalogProduct, error)
	GetByID(ctx context.Context, id int64) (*CatalogProduct, error)
	Create(ctx context.Context, p *CatalogProduct) error
	Update(ctx context.Context, p *CatalogProduct) error
	Delete(ctx context.Context, id int64) error
	SearchByName(ctx context.Context, query string) ([]CatalogProduct, error)
}

// TransactionRepository defines persistence operations for sales.
type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error
	ListByDate(ctx context.Context, date string) ([]Transaction, error)
}
