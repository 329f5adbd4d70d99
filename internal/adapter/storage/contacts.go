package storage

import (
	"context"
	"fmt"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var _ port.ContactStorage = (*ContactRepository)(nil)

type ContactRepository struct {
	sqldb sqldb
}

func NewContactRepository(sqldb sqldb) ContactRepository {
	return ContactRepository{sqldb}
}

func (r ContactRepository) StoreMessage(
	ctx context.Context, msg domain.ContactMessage,
) error {
	const op = "ContactRepository.StoreMessage"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4);`

	_, err := r.sqldb.ExecContext(ctx,
		query, msg.Name, msg.Email, msg.Subject, msg.Message,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to insert: %w", op, err)
	}
	return nil
}
