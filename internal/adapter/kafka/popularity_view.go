package kafka

import (
	"context"
	"log/slog"

	"github.com/Sarhan619/grocery-app/internal/core/port"
	"github.com/lovoo/goka"
)

var _ port.PopularityReader = (*PopularityView)(nil)

// A PopularityView reads the add-to-cart counters from the
// popularity group table.
type PopularityView struct {
	gv *goka.View
}

func NewPopularityView(
	seedBrokers []string, group string,
) (PopularityView, error) {
	const op = "NewPopularityView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		counterValueCodec{},
		withNonlogViewOpt(),
	)
	if err != nil {
		return PopularityView{}, opErr(err, op)
	}
	return PopularityView{gv}, nil
}

func (v PopularityView) Run(ctx context.Context) {
	const op = "PopularityView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// AddToCartCount returns the counted add-to-cart events for the
// product id; zero when the product was never added.
func (v PopularityView) AddToCartCount(
	ctx context.Context, productID int64,
) (int64, error) {
	const op = "PopularityView.AddToCartCount"

	if err := ctx.Err(); err != nil {
		return 0, opErr(err, op)
	}

	val, err := v.gv.Get(productKey(productID))
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	count, ok := val.(counterValue)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(count), nil
}
