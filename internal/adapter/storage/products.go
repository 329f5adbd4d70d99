package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var _ port.ProductsWriter = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

// ReadProducts returns all product rows with category and brand
// names resolved. A product on sale carries a non-null sale_price;
// stock is exposed as the in-stock flag the storefront renders.
func (r ProductsRepository) ReadProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.ReadProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			p.id, p.name, p.description, p.price, p.sale_price,
			p.image_url, c.name, COALESCE(b.name, ''),
			p.stock_count, p.is_organic, p.is_featured
		FROM products p
		JOIN categories c ON c.id = p.category_id
		LEFT JOIN brands b ON b.id = p.brand_id
		ORDER BY p.id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		var (
			v         domain.Product
			salePrice sql.NullFloat64
			stock     int
		)
		err := rows.Scan(
			&v.ID, &v.Name, &v.Description, &v.Price, &salePrice,
			&v.Image, &v.Category, &v.Brand,
			&stock, &v.Organic, &v.Featured,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}

		if salePrice.Valid {
			v.Sale = true
			v.SalePrice = salePrice.Float64
		}
		v.InStock = stock > 0
		ps = append(ps, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

func (r ProductsRepository) StoreProduct(
	ctx context.Context, in domain.ProductInput,
) (int64, error) {
	const op = "ProductsRepository.StoreProduct"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO products (
			name, description, price, sale_price, image_url,
			category_id, brand_id, stock_count, is_organic, is_featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;`

	var id int64
	err := r.sqldb.QueryRowContext(ctx, query,
		in.Name, in.Description, in.Price, in.SalePrice, in.ImageURL,
		in.CategoryID, in.BrandID, in.StockCount, in.IsOrganic, in.IsFeatured,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert: %w", op, err)
	}
	return id, nil
}

func (r ProductsRepository) DeleteProduct(
	ctx context.Context, id int64,
) error {
	const op = "ProductsRepository.DeleteProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1;`, id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to delete: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: product %d: %w", op, id, domain.ErrNotFound)
	}
	return nil
}
