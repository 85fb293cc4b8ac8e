package filtering

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const (
	StrategyIntersect = "intersect"
	StrategyPushdown  = "pushdown"
)

// Resolver narrows a target kind to the ids satisfying every applied facet of a bag.
// No applied facets means no restriction: every id of the kind is returned.
type Resolver interface {
	Resolve(ctx context.Context, kind taxonomy.Kind, bag Bag) ([]ID, error)
}

// Store is the read side the in-process strategy needs.
type Store interface {
	// Lookup returns assoc.Target for rows whose assoc.Source is in sourceIDs, in scan order,
	// without dedup and without NULL targets.
	Lookup(ctx context.Context, assoc Association, sourceIDs []ID) ([]ID, error)
	// AllIDs returns every live id of kind.
	AllIDs(ctx context.Context, kind taxonomy.Kind) ([]ID, error)
}

// Resolution summarizes one Resolve call for observers.
type Resolution struct {
	Registry string
	Kind     taxonomy.Kind
	Strategy string
	Applied  int
	Results  int
	Duration time.Duration
	Err      error
}

type Observer interface {
	ObserveResolution(r Resolution)
}

type Options struct {
	// DedupSingleFacet removes duplicate join rows from single-facet results. Off by default:
	// single-facet resolution returns the join rows as stored.
	DedupSingleFacet bool
}

type Engine struct {
	log      *logger.Logger
	registry *Registry
	store    Store
	observer Observer
	opts     Options
}

func NewEngine(log *logger.Logger, registry *Registry, store Store, observer Observer, opts Options) *Engine {
	return &Engine{
		log:      log.With("resolver", registry.Name(), "strategy", StrategyIntersect),
		registry: registry,
		store:    store,
		observer: observer,
		opts:     opts,
	}
}

func (e *Engine) Registry() *Registry { return e.registry }

func (e *Engine) Resolve(ctx context.Context, kind taxonomy.Kind, bag Bag) (ids []ID, err error) {
	start := time.Now()
	ctx, span := otel.Tracer("abcd/filtering").Start(ctx, "filtering.Resolve")
	applied := 0
	defer func() {
		span.SetAttributes(
			attribute.String("filter.registry", e.registry.Name()),
			attribute.String("filter.kind", string(kind)),
			attribute.Int("filter.applied", applied),
			attribute.Int("filter.results", len(ids)),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if e.observer != nil {
			e.observer.ObserveResolution(Resolution{
				Registry: e.registry.Name(),
				Kind:     kind,
				Strategy: StrategyIntersect,
				Applied:  applied,
				Results:  len(ids),
				Duration: time.Since(start),
				Err:      err,
			})
		}
	}()

	bindings, err := e.registry.Applied(kind, bag)
	if err != nil {
		return nil, err
	}
	applied = len(bindings)

	switch len(bindings) {
	case 0:
		all, err := e.store.AllIDs(ctx, kind)
		if err != nil {
			return nil, &LookupError{Registry: e.registry.Name(), Target: string(kind), Table: kind.Table(), Err: err}
		}
		return all, nil
	case 1:
		out, err := e.lookup(ctx, kind, bindings[0], bag)
		if err != nil {
			return nil, err
		}
		if e.opts.DedupSingleFacet {
			out = Dedup(out)
		}
		return out, nil
	}

	candidates := make([][]ID, 0, len(bindings))
	for _, b := range bindings {
		out, err := e.lookup(ctx, kind, b, bag)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, out)
	}
	return Intersect(candidates...), nil
}

func (e *Engine) lookup(ctx context.Context, kind taxonomy.Kind, b Binding, bag Bag) ([]ID, error) {
	out, err := e.store.Lookup(ctx, b.Association, bag[b.Facet])
	if err != nil {
		e.log.Warn("association lookup failed", "kind", kind, "facet", b.Facet, "table", b.Association.Table, "error", err)
		return nil, &LookupError{
			Registry: e.registry.Name(),
			Target:   string(kind),
			Facet:    b.Facet,
			Table:    b.Association.Table,
			Err:      err,
		}
	}
	if out == nil {
		out = []ID{}
	}
	return out, nil
}
