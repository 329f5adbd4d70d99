package storage

import (
	"context"
	"fmt"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var _ port.CategoriesWriter = (*CategoriesRepository)(nil)

type CategoriesRepository struct {
	sqldb sqldb
}

func NewCategoriesRepository(sqldb sqldb) CategoriesRepository {
	return CategoriesRepository{sqldb}
}

func (r CategoriesRepository) ReadCategories(
	ctx context.Context,
) ([]domain.Category, error) {
	const op = "CategoriesRepository.ReadCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT id, name, description, image_url, product_count
		FROM categories
		ORDER BY id ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer rows.Close()

	var cs []domain.Category
	for rows.Next() {
		var v domain.Category
		err := rows.Scan(
			&v.ID, &v.Name, &v.Description, &v.Image, &v.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}
		cs = append(cs, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (r CategoriesRepository) StoreCategory(
	ctx context.Context, in domain.CategoryInput,
) (int64, error) {
	const op = "CategoriesRepository.StoreCategory"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO categories (name, description, image_url)
		VALUES ($1, $2, $3)
		RETURNING id;`

	var id int64
	err := r.sqldb.QueryRowContext(ctx, query,
		in.Name, in.Description, in.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert: %w", op, err)
	}
	return id, nil
}

func (r CategoriesRepository) DeleteCategory(
	ctx context.Context, id int64,
) error {
	const op = "CategoriesRepository.DeleteCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1;`, id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to delete: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: category %d: %w", op, id, domain.ErrNotFound)
	}
	return nil
}
