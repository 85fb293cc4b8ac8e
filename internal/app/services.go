package app

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/data/cache"
	repotax "github.com/yungbote/abcd-backend/internal/data/repos/taxonomy"
	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/observability"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
	"github.com/yungbote/abcd-backend/internal/services"
)

type Services struct {
	Registries filtering.Registries
	Resolver   filtering.Resolver
	Catalog    services.CatalogService
	Links      services.LinkService
	// Auth is nil when no JWT secret is configured.
	Auth services.AuthService
}

func wireServices(db *gorm.DB, rdb *goredis.Client, log *logger.Logger, cfg Config, metrics *observability.Metrics, r Repos) (Services, error) {
	log.Info("Wiring services...")

	regs, err := filtering.LoadRegistries(log)
	if err != nil {
		return Services{}, fmt.Errorf("load facet registries: %w", err)
	}

	var observer filtering.Observer
	var recorder cache.Recorder
	if metrics != nil {
		observer = metrics
		recorder = metrics
	}

	opts := filtering.Options{DedupSingleFacet: cfg.DedupSingle}
	store := repotax.NewFilterStore(r.Associations, r.Entities)
	var taxR filtering.Resolver = filtering.NewEngine(log, regs.Taxonomy, store, observer, opts)
	var regionR filtering.Resolver = filtering.NewEngine(log, regs.Region, store, observer, opts)

	var invalidator services.Invalidator
	if rdb != nil {
		cached := cache.NewResolver(rdb, taxR, regs.Taxonomy, log, recorder, regs.Taxonomy.Name(), cfg.Redis)
		taxR = cached
		regionR = cache.NewResolver(rdb, regionR, regs.Region, log, recorder, regs.Region.Name(), cfg.Redis)
		// every cached resolver shares one generation counter
		invalidator = cached
	}

	resolver := filtering.NewComposite(
		filtering.Member{Registry: regs.Taxonomy, Resolver: taxR},
		filtering.Member{Registry: regs.Region, Resolver: regionR},
	)

	overrides := map[taxonomy.Kind]filtering.Resolver{}
	if cfg.CourseFilter == filtering.StrategyPushdown {
		var pushdown filtering.Resolver = repotax.NewPushdownResolver(db, log, regs.Taxonomy, observer)
		if rdb != nil {
			pushdown = cache.NewResolver(rdb, pushdown, regs.Taxonomy, log, recorder, filtering.StrategyPushdown, cfg.Redis)
		}
		overrides[taxonomy.KindCourse] = filtering.NewComposite(
			filtering.Member{Registry: regs.Taxonomy, Resolver: pushdown},
			filtering.Member{Registry: regs.Region, Resolver: regionR},
		)
		log.Info("course listings use the pushdown strategy")
	}

	out := Services{
		Registries: regs,
		Resolver:   resolver,
		Catalog:    services.NewCatalogService(log, r.Entities, regs, resolver, overrides),
		Links:      services.NewLinkService(db, log, r.Links, invalidator),
	}
	if cfg.JWTSecret != "" {
		auth, err := services.NewAuthService(log, cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
		if err != nil {
			return Services{}, err
		}
		out.Auth = auth
	}
	return out, nil
}
