package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/Sarhan619/grocery-app/internal/core/domain"
	"github.com/Sarhan619/grocery-app/pkg/schema"
	"github.com/lovoo/goka"
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor].
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A cartEventCodec used for serde [schema.CartEventV1]
type cartEventCodec struct {
	serde Serde
}

func newCartEventCodec(s Serde) cartEventCodec {
	return cartEventCodec{s}
}

func (c cartEventCodec) Encode(v any) ([]byte, error) {
	const op = "cartEventCodec.Encode"
	if _, ok := v.(schema.CartEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c cartEventCodec) Decode(data []byte) (any, error) {
	const op = "cartEventCodec.Decode"
	var s schema.CartEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A counterValue is the add-to-cart total for one product id.
type counterValue int64

// A counterValueCodec used for serde [counterValue]
type counterValueCodec struct{}

func (counterValueCodec) Encode(v any) ([]byte, error) {
	const op = "counterValueCodec.Encode"
	cv, ok := v.(counterValue)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(cv), 10)
	return data, nil
}

func (counterValueCodec) Decode(data []byte) (any, error) {
	const op = "counterValueCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return counterValue(n), nil
}

// A PopularityProcessor counts add-to-cart events per product id
// from the activity stream into a group table.
type PopularityProcessor struct {
	opPrefix string
	proc     processor
}

func NewPopularityProc(
	seedBrokers []string,
	inputStream string,
	group string,
	cartEventSerde Serde,
) (*PopularityProcessor, error) {
	const op = "NewPopularityProc"

	var p PopularityProcessor

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(
			goka.Stream(inputStream),
			newCartEventCodec(cartEventSerde),
			p.processFn,
		),
		goka.Persist(counterValueCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: "PopularityProcessor",
		gp:       gp,
	}
	p.opPrefix = p.proc.opPrefix
	return &p, nil
}

func (p *PopularityProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *PopularityProcessor) Close() {
	p.proc.close()
}

func (p *PopularityProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.CartEventV1)
	if event.Action != domain.CartActionAdded {
		return
	}

	var count counterValue
	if v := ctx.Value(); v != nil {
		count, _ = v.(counterValue)
	}
	count++
	ctx.SetValue(count)

	log.Info("counted add-to-cart",
		"productID", event.ProductID, "count", int64(count))
}
