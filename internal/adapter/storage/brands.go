package storage

import (
	"context"
	"fmt"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var _ port.BrandsWriter = (*BrandsRepository)(nil)

type BrandsRepository struct {
	sqldb sqldb
}

func NewBrandsRepository(sqldb sqldb) BrandsRepository {
	return BrandsRepository{sqldb}
}

func (r BrandsRepository) ReadBrands(
	ctx context.Context,
) ([]domain.Brand, error) {
	const op = "BrandsRepository.ReadBrands"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, name, category_id
		FROM brands
		ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	var bs []domain.Brand
	for rows.Next() {
		var v domain.Brand
		if err := rows.Scan(&v.ID, &v.Name, &v.CategoryID); err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}
		bs = append(bs, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bs, nil
}

func (r BrandsRepository) StoreBrand(
	ctx context.Context, in domain.BrandInput,
) (int64, error) {
	const op = "BrandsRepository.StoreBrand"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO brands (name, category_id)
		VALUES ($1, $2)
		RETURNING id;`

	var id int64
	err := r.sqldb.QueryRowContext(ctx, query, in.Name, in.CategoryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert: %w", op, err)
	}
	return id, nil
}

func (r BrandsRepository) DeleteBrand(ctx context.Context, id int64) error {
	const op = "BrandsRepository.DeleteBrand"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		`DELETE FROM brands WHERE id = $1;`, id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to delete: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: brand %d: %w", op, id, domain.ErrNotFound)
	}
	return nil
}
