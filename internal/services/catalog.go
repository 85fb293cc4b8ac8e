package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/abcd-backend/internal/data/repos"
	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/apierr"
	"github.com/yungbote/abcd-backend/internal/platform/dbctx"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// StatusAny disables the status gate on listings.
	StatusAny = "any"
)

type ListParams struct {
	Status string
	Q      string
	Page   int
	Limit  int
}

type CatalogPage struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// FacetInfo lists the facets one kind accepts, per registry.
type FacetInfo struct {
	Kind     taxonomy.Kind     `json:"kind"`
	Taxonomy []filtering.Facet `json:"taxonomy"`
	Region   []filtering.Facet `json:"region"`
}

type CatalogService interface {
	List(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag, params ListParams) (*CatalogPage, error)
	ResolveIDs(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag) ([]filtering.ID, error)
	Get(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) (interface{}, error)
	Facets() []FacetInfo
	Registries() filtering.Registries
}

type catalogService struct {
	log        *logger.Logger
	entities   repos.EntityRepo
	registries filtering.Registries
	resolver   filtering.Resolver
	overrides  map[taxonomy.Kind]filtering.Resolver
}

// NewCatalogService resolves every kind with resolver except those given an override (course
// listings may use the pushdown strategy).
func NewCatalogService(
	baseLog *logger.Logger,
	entities repos.EntityRepo,
	registries filtering.Registries,
	resolver filtering.Resolver,
	overrides map[taxonomy.Kind]filtering.Resolver,
) CatalogService {
	return &catalogService{
		log:        baseLog.With("service", "CatalogService"),
		entities:   entities,
		registries: registries,
		resolver:   resolver,
		overrides:  overrides,
	}
}

func (s *catalogService) Registries() filtering.Registries { return s.registries }

func (s *catalogService) resolverFor(kind taxonomy.Kind) filtering.Resolver {
	if r, ok := s.overrides[kind]; ok && r != nil {
		return r
	}
	return s.resolver
}

func (s *catalogService) checkKind(kind taxonomy.Kind) error {
	if !s.registries.Supports(kind) {
		return apierr.NotFound("unknown_kind", fmt.Errorf("%w: %q", filtering.ErrUnknownKind, kind))
	}
	return nil
}

func (s *catalogService) ResolveIDs(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag) ([]filtering.ID, error) {
	if err := s.checkKind(kind); err != nil {
		return nil, err
	}
	ids, err := s.resolverFor(kind).Resolve(ctx, kind, bag)
	if err != nil {
		return nil, resolveError(err)
	}
	return ids, nil
}

func (s *catalogService) List(ctx context.Context, kind taxonomy.Kind, bag filtering.Bag, params ListParams) (*CatalogPage, error) {
	if err := s.checkKind(kind); err != nil {
		return nil, err
	}
	params = normalizeParams(params)

	q := repos.ListQuery{
		Status: params.Status,
		Q:      params.Q,
		Page:   params.Page,
		Limit:  params.Limit,
	}
	applied := s.registries.Applied(kind, bag)
	if len(applied) == 0 {
		// an empty bag selects every id; skip the id restriction entirely
		q.Unrestricted = true
	} else {
		ids, err := s.resolverFor(kind).Resolve(ctx, kind, bag)
		if err != nil {
			return nil, resolveError(err)
		}
		q.IDs = ids
	}

	page, err := s.entities.List(dbctx.New(ctx), kind, q)
	if err != nil {
		s.log.Error("catalog listing failed", "kind", kind, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "internal", err)
	}
	return &CatalogPage{
		Items: page.Items,
		Total: page.Total,
		Page:  params.Page,
		Limit: params.Limit,
	}, nil
}

func (s *catalogService) Get(ctx context.Context, kind taxonomy.Kind, id uuid.UUID) (interface{}, error) {
	if _, ok := taxonomy.NewModel(kind); !ok {
		return nil, apierr.NotFound("unknown_kind", fmt.Errorf("%w: %q", filtering.ErrUnknownKind, kind))
	}
	item, err := s.entities.Get(dbctx.New(ctx), kind, id)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, "internal", err)
	}
	if item == nil {
		return nil, apierr.NotFound("not_found", fmt.Errorf("%s %s not found", kind, id))
	}
	return item, nil
}

func (s *catalogService) Facets() []FacetInfo {
	var tax, region map[taxonomy.Kind][]filtering.Facet
	if s.registries.Taxonomy != nil {
		tax = s.registries.Taxonomy.Describe()
	}
	if s.registries.Region != nil {
		region = s.registries.Region.Describe()
	}
	out := []FacetInfo{}
	for _, kind := range taxonomy.Kinds() {
		if !s.registries.Supports(kind) {
			continue
		}
		info := FacetInfo{Kind: kind, Taxonomy: tax[kind], Region: region[kind]}
		if info.Taxonomy == nil {
			info.Taxonomy = []filtering.Facet{}
		}
		if info.Region == nil {
			info.Region = []filtering.Facet{}
		}
		out = append(out, info)
	}
	return out
}

func normalizeParams(p ListParams) ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
	switch p.Status {
	case "":
		p.Status = taxonomy.StatusPublished
	case StatusAny:
		p.Status = ""
	}
	return p
}

func resolveError(err error) error {
	switch {
	case errors.Is(err, filtering.ErrLookupFailed):
		return apierr.New(http.StatusServiceUnavailable, "lookup_failed", err)
	case errors.Is(err, filtering.ErrUnknownKind):
		return apierr.NotFound("unknown_kind", err)
	default:
		return apierr.New(http.StatusInternalServerError, "internal", err)
	}
}
