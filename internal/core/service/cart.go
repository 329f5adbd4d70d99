package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/internal/core/port"
	"github.com/google/uuid"
)

var _ port.CartOperator = (*CartService)(nil)
var _ port.SessionIssuer = (*CartService)(nil)

// A CartService keeps one cart per storefront session. Each cart is
// single-writer; the registry lock only serializes session lookup
// and the mutation of the looked-up cart.
//
// Cart mutations emit activity events fire-and-forget: a produce
// failure is logged once and never fails the user action.
type CartService struct {
	products port.ProductGetter
	events   port.CartEventsProducer

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartService(
	products port.ProductGetter, events port.CartEventsProducer,
) *CartService {
	return &CartService{
		products: products,
		events:   events,
		carts:    make(map[string]*domain.Cart),
	}
}

// IssueSession returns a fresh session id for clients arriving
// without one.
func (s *CartService) IssueSession() string {
	return uuid.NewString()
}

func (s *CartService) GetCart(
	ctx context.Context, sessionID string,
) (domain.CartSnapshot, error) {
	const op = "CartService.GetCart"

	if err := ctx.Err(); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(sessionID).Snapshot(), nil
}

func (s *CartService) AddItem(
	ctx context.Context, sessionID string, productID int64,
) (domain.CartSnapshot, error) {
	const op = "CartService.AddItem"

	if err := ctx.Err(); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	cart := s.cart(sessionID)
	cart.AddItem(p)
	snap := cart.Snapshot()
	s.mu.Unlock()

	s.emit(ctx, domain.CartEvent{
		SessionID:   sessionID,
		Action:      domain.CartActionAdded,
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		UnitPrice:   p.EffectivePrice(),
		Quantity:    1,
	})
	return snap, nil
}

func (s *CartService) RemoveItem(
	ctx context.Context, sessionID string, productID int64,
) (domain.CartSnapshot, error) {
	const op = "CartService.RemoveItem"

	if err := ctx.Err(); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	cart := s.cart(sessionID)
	line, existed := lineFor(cart, productID)
	cart.RemoveItem(productID)
	snap := cart.Snapshot()
	s.mu.Unlock()

	if existed {
		s.emit(ctx, domain.CartEvent{
			SessionID:   sessionID,
			Action:      domain.CartActionRemoved,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Category:    line.Product.Category,
			UnitPrice:   line.Product.EffectivePrice(),
			Quantity:    1,
		})
	}
	return snap, nil
}

func (s *CartService) SetQuantity(
	ctx context.Context, sessionID string, productID int64, quantity int,
) (domain.CartSnapshot, error) {
	const op = "CartService.SetQuantity"

	if err := ctx.Err(); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	cart := s.cart(sessionID)
	cart.SetQuantity(productID, quantity)
	snap := cart.Snapshot()
	s.mu.Unlock()
	return snap, nil
}

func (s *CartService) ClearCart(
	ctx context.Context, sessionID string,
) (domain.CartSnapshot, error) {
	const op = "CartService.ClearCart"

	if err := ctx.Err(); err != nil {
		return domain.CartSnapshot{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	cart := s.cart(sessionID)
	cart.Clear()
	snap := cart.Snapshot()
	s.mu.Unlock()

	s.emit(ctx, domain.CartEvent{
		SessionID: sessionID,
		Action:    domain.CartActionCleared,
	})
	return snap, nil
}

// cart returns the session's cart, creating it on first use.
// Callers hold s.mu.
func (s *CartService) cart(sessionID string) *domain.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = domain.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

func (s *CartService) emit(ctx context.Context, evt domain.CartEvent) {
	const op = "CartService.emit"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceCartEvent(ctx, evt); err != nil {
		slog.Error("failed to produce cart event",
			"op", op, "action", evt.Action, "err", err)
	}
}

func lineFor(cart *domain.Cart, productID int64) (domain.CartLine, bool) {
	for _, l := range cart.Lines() {
		if l.Product.ID == productID {
			return l, true
		}
	}
	return domain.CartLine{}, false
}
