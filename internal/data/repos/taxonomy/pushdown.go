package taxonomy

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	domain "github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

// PushdownResolver evaluates every applied facet as an IN subquery on the target table and lets
// the database compute the AND. Results are distinct live ids in id order.
type PushdownResolver struct {
	db       *gorm.DB
	log      *logger.Logger
	registry *filtering.Registry
	observer filtering.Observer
}

func NewPushdownResolver(db *gorm.DB, baseLog *logger.Logger, registry *filtering.Registry, observer filtering.Observer) *PushdownResolver {
	return &PushdownResolver{
		db:       db,
		log:      baseLog.With("resolver", registry.Name(), "strategy", filtering.StrategyPushdown),
		registry: registry,
		observer: observer,
	}
}

// inAssociation restricts the outer query's id to the targets of assoc reachable from ids.
func inAssociation(db *gorm.DB, assoc filtering.Association, ids []filtering.ID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table(assoc.Table).
			Select(assoc.Target).
			Where(assoc.Source+" IN ?", ids).
			Where(assoc.Target + " IS NOT NULL")
		if assoc.LiveOnly {
			sub = sub.Where("deleted_at IS NULL")
		}
		return tx.Where("id IN (?)", sub)
	}
}

func (r *PushdownResolver) Resolve(ctx context.Context, kind domain.Kind, bag filtering.Bag) (ids []filtering.ID, err error) {
	start := time.Now()
	ctx, span := otel.Tracer("abcd/filtering").Start(ctx, "filtering.Resolve")
	applied := 0
	defer func() {
		span.SetAttributes(
			attribute.String("filter.registry", r.registry.Name()),
			attribute.String("filter.kind", string(kind)),
			attribute.String("filter.strategy", filtering.StrategyPushdown),
			attribute.Int("filter.applied", applied),
			attribute.Int("filter.results", len(ids)),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if r.observer != nil {
			r.observer.ObserveResolution(filtering.Resolution{
				Registry: r.registry.Name(),
				Kind:     kind,
				Strategy: filtering.StrategyPushdown,
				Applied:  applied,
				Results:  len(ids),
				Duration: time.Since(start),
				Err:      err,
			})
		}
	}()

	bindings, err := r.registry.Applied(kind, bag)
	if err != nil {
		return nil, err
	}
	applied = len(bindings)
	model, ok := domain.NewModel(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no table", filtering.ErrUnknownKind, kind)
	}

	q := r.db.WithContext(ctx).Model(model)
	for _, b := range bindings {
		q = q.Scopes(inAssociation(r.db, b.Association, bag[b.Facet]))
	}
	out := []filtering.ID{}
	if err := q.Order("id").Pluck("id", &out).Error; err != nil {
		r.log.Warn("pushdown resolution failed", "kind", kind, "applied", applied, "error", err)
		return nil, &filtering.LookupError{
			Registry: r.registry.Name(),
			Target:   string(kind),
			Table:    kind.Table(),
			Err:      err,
		}
	}
	if out == nil {
		out = []filtering.ID{}
	}
	return out, nil
}
