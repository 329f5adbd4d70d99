package service

import (
	"context"
	"fmt"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
)

var _ port.ContactSubmitter = (*ContactService)(nil)

type ContactService struct {
	storage port.ContactStorage
}

func NewContactService(storage port.ContactStorage) *ContactService {
	return &ContactService{storage}
}

func (s *ContactService) SubmitMessage(
	ctx context.Context, msg domain.ContactMessage,
) error {
	const op = "ContactService.SubmitMessage"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return fmt.Errorf(
			"%s: name, email and message are required: %w",
			op, ErrInvalidInput,
		)
	}

	if err := s.storage.StoreMessage(ctx, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
