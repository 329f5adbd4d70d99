package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

type sqldb interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PingContext(ctx context.Context) error
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLDB struct {
	*sql.DB
}

func NewSQLDB(ctx context.Context, dsn string) (SQLDB, error) {
	const op = "NewSQLDB"
	log := slog.With("op", op)

	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return SQLDB{}, fmt.Errorf("%s: invalid dsn: %w", op, err)
	}
	connStr := stdlib.RegisterConnConfig(connConfig)
	db, _ := sql.Open("pgx", connStr)

	s := SQLDB{db}
	if err := s.PingContext(ctx); err != nil {
		return SQLDB{}, fmt.Errorf("%s: database is unavailable: %w", op, err)
	}
	log.Info("database is available")
	return s, nil
}

func (s SQLDB) Close() {
	const op = "SQLDB.Close"
	log := slog.With("op", op)

	log.Info("closing sql database...")
	if err := s.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("sql database is closed")
}

var _ port.CatalogStorage = (*CatalogStorage)(nil)

// A CatalogStorage bundles the per-table repositories behind the
// single read interface the catalog service consumes.
type CatalogStorage struct {
	products   ProductsRepository
	categories CategoriesRepository
	brands     BrandsRepository
}

func NewCatalogStorage(db sqldb) CatalogStorage {
	return CatalogStorage{
		products:   NewProductsRepository(db),
		categories: NewCategoriesRepository(db),
		brands:     NewBrandsRepository(db),
	}
}

func (s CatalogStorage) ReadProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	return s.products.ReadProducts(ctx)
}

func (s CatalogStorage) ReadCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	return s.categories.ReadCategories(ctx)
}

func (s CatalogStorage) ReadBrands(
	ctx context.Context,
) ([]domain.Brand, error) {
	return s.brands.ReadBrands(ctx)
}
