package filtering

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

const (
	t1 ID = 1
	o1 ID = 21
	b1 ID = 11
	b2 ID = 12
	b3 ID = 13
	b4 ID = 14
)

var (
	behaviourByTopic   = Association{Table: "behaviour_topic", Source: "topic_id", Target: "behaviour_id"}
	behaviourByOutcome = Association{Table: "behaviour_outcome", Source: "outcome_id", Target: "behaviour_id"}
)

func loadRegistries(t *testing.T) Registries {
	t.Helper()
	rs, err := LoadRegistries(logger.Nop())
	if err != nil {
		t.Fatalf("LoadRegistries: %v", err)
	}
	return rs
}

// behaviourFixture links T1 to B1..B3 and O1 to B2..B4.
func behaviourFixture() *fakeStore {
	s := newFakeStore()
	s.all[taxonomy.KindBehaviour] = []ID{b1, b2, b3, b4, 15}
	for _, b := range []ID{b1, b2, b3} {
		s.link(behaviourByTopic, t1, b)
	}
	for _, b := range []ID{b2, b3, b4} {
		s.link(behaviourByOutcome, o1, b)
	}
	return s
}

type recordingObserver struct {
	got []Resolution
}

func (o *recordingObserver) ObserveResolution(r Resolution) { o.got = append(o.got, r) }

func TestResolveBehaviourScenarios(t *testing.T) {
	rs := loadRegistries(t)
	ctx := context.Background()

	tests := []struct {
		name string
		bag  Bag
		want []ID
	}{
		{name: "topic and outcome", bag: Bag{"topic_ids": {t1}, "outcome_ids": {o1}}, want: []ID{b2, b3}},
		{name: "topic only", bag: Bag{"topic_ids": {t1}}, want: []ID{b1, b2, b3}},
		{name: "no facets selects all", bag: Bag{}, want: []ID{b1, b2, b3, b4, 15}},
		{name: "unrelated facet ignored", bag: Bag{"skill_ids": {3}}, want: []ID{b1, b2, b3, b4, 15}},
		{name: "own facet ignored", bag: Bag{"behaviour_ids": {b1}}, want: []ID{b1, b2, b3, b4, 15}},
		{name: "no matching rows", bag: Bag{"topic_ids": {999}}, want: []ID{}},
		{name: "no overlap", bag: Bag{"topic_ids": {999}, "outcome_ids": {o1}}, want: []ID{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(logger.Nop(), rs.Taxonomy, behaviourFixture(), nil, Options{})
			got, err := engine.Resolve(ctx, taxonomy.KindBehaviour, tt.bag)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveSingleFacetKeepsDuplicates(t *testing.T) {
	rs := loadRegistries(t)
	store := behaviourFixture()
	store.link(behaviourByTopic, t1, b2)

	engine := NewEngine(logger.Nop(), rs.Taxonomy, store, nil, Options{})
	got, err := engine.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{"topic_ids": {t1}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff([]ID{b1, b2, b3, b2}, got); diff != "" {
		t.Fatalf("single facet should return join rows as stored (-want +got):\n%s", diff)
	}

	dedup := NewEngine(logger.Nop(), rs.Taxonomy, store, nil, Options{DedupSingleFacet: true})
	got, err = dedup.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{"topic_ids": {t1}})
	if err != nil {
		t.Fatalf("Resolve dedup: %v", err)
	}
	if diff := cmp.Diff([]ID{b1, b2, b3}, got); diff != "" {
		t.Fatalf("dedup mismatch (-want +got):\n%s", diff)
	}

	multi, err := engine.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{"topic_ids": {t1}, "outcome_ids": {o1}})
	if err != nil {
		t.Fatalf("Resolve multi: %v", err)
	}
	if diff := cmp.Diff([]ID{b2, b3}, multi); diff != "" {
		t.Fatalf("multi facet should dedup (-want +got):\n%s", diff)
	}
}

func TestResolveSkipsNullTargets(t *testing.T) {
	rs := loadRegistries(t)
	store := newFakeStore()
	topicByBehaviour := Association{Table: "behaviour_topic", Source: "behaviour_id", Target: "topic_id"}
	store.link(topicByBehaviour, b1, t1)
	store.link(topicByBehaviour, b1, 0) // row for a sub-topic

	engine := NewEngine(logger.Nop(), rs.Taxonomy, store, nil, Options{})
	got, err := engine.Resolve(context.Background(), taxonomy.KindTopic, Bag{"behaviour_ids": {b1}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff([]ID{t1}, got); diff != "" {
		t.Fatalf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveLookupFailure(t *testing.T) {
	rs := loadRegistries(t)
	store := behaviourFixture()
	store.failOn = "behaviour_outcome"
	obs := &recordingObserver{}

	engine := NewEngine(logger.Nop(), rs.Taxonomy, store, obs, Options{})
	got, err := engine.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{"topic_ids": {t1}, "outcome_ids": {o1}})
	if got != nil {
		t.Fatalf("expected no partial result, got %v", got)
	}
	if !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
	var lerr *LookupError
	if !errors.As(err, &lerr) || lerr.Facet != "outcome_ids" || lerr.Table != "behaviour_outcome" {
		t.Fatalf("expected LookupError for outcome_ids, got %#v", err)
	}
	if len(obs.got) != 1 || obs.got[0].Err == nil || obs.got[0].Applied != 2 {
		t.Fatalf("observer not notified of failure: %+v", obs.got)
	}

	store.failOn = "behaviour"
	if _, err := engine.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{}); !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("AllIDs failure: expected ErrLookupFailed, got %v", err)
	}
}

func TestResolveUnknownKind(t *testing.T) {
	rs := loadRegistries(t)
	engine := NewEngine(logger.Nop(), rs.Taxonomy, newFakeStore(), nil, Options{})
	if _, err := engine.Resolve(context.Background(), taxonomy.KindCountry, Bag{}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

// Every kind in the registry: empty bag returns all ids, one facet returns the raw lookup, and
// several facets return the intersection of the raw lookups.
func TestResolvePropertiesAcrossKinds(t *testing.T) {
	rs := loadRegistries(t)
	ctx := context.Background()

	for _, reg := range []*Registry{rs.Taxonomy, rs.Region} {
		for _, kind := range reg.Kinds() {
			bindings, err := reg.Bindings(kind)
			if err != nil {
				t.Fatalf("Bindings(%s): %v", kind, err)
			}
			store := newFakeStore()
			store.all[kind] = []ID{100, 101, 102, 103}
			// facet i links source 1 to targets {100..103} minus 100+i, plus a duplicate row
			for i, b := range bindings {
				for _, target := range []ID{100, 101, 102, 103} {
					if target != ID(100+i%4) {
						store.link(b.Association, 1, target)
					}
				}
				store.link(b.Association, 1, 101)
			}
			engine := NewEngine(logger.Nop(), reg, store, nil, Options{})

			all, err := engine.Resolve(ctx, kind, Bag{})
			if err != nil || !cmp.Equal(all, []ID{100, 101, 102, 103}) {
				t.Fatalf("%s/%s empty bag: got %v err %v", reg.Name(), kind, all, err)
			}

			bag := Bag{}
			var lookups [][]ID
			for i, b := range bindings {
				single, err := engine.Resolve(ctx, kind, Bag{b.Facet: {1}})
				if err != nil {
					t.Fatalf("%s/%s single %s: %v", reg.Name(), kind, b.Facet, err)
				}
				raw, _ := store.Lookup(ctx, b.Association, []ID{1})
				if diff := cmp.Diff(raw, single); diff != "" {
					t.Fatalf("%s/%s single %s differs from raw lookup:\n%s", reg.Name(), kind, b.Facet, diff)
				}
				bag[b.Facet] = []ID{1}
				lookups = append(lookups, raw)
				if i == 0 {
					continue
				}
				multi, err := engine.Resolve(ctx, kind, bag)
				if err != nil {
					t.Fatalf("%s/%s multi: %v", reg.Name(), kind, err)
				}
				if diff := cmp.Diff(sorted(Intersect(lookups...)), sorted(multi)); diff != "" {
					t.Fatalf("%s/%s multi differs from intersection:\n%s", reg.Name(), kind, diff)
				}
				for _, l := range lookups {
					for _, id := range multi {
						if !contains(l, id) {
							t.Fatalf("%s/%s: %d not in every lookup", reg.Name(), kind, id)
						}
					}
				}
			}
		}
	}
}

func TestResolveUsesRegistryOrder(t *testing.T) {
	rs := loadRegistries(t)
	store := behaviourFixture()
	engine := NewEngine(logger.Nop(), rs.Taxonomy, store, nil, Options{})

	// bag order cannot influence which list leads the intersection
	a, _ := engine.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{"outcome_ids": {o1}, "topic_ids": {t1}})
	b, _ := engine.Resolve(context.Background(), taxonomy.KindBehaviour, Bag{"topic_ids": {t1}, "outcome_ids": {o1}})
	if !cmp.Equal(a, b) {
		t.Fatalf("results depend on bag order: %v vs %v", a, b)
	}
}

func TestCompositeRegionAndTaxonomy(t *testing.T) {
	rs := loadRegistries(t)
	ctx := context.Background()

	tax := newFakeStore()
	tax.all[taxonomy.KindOrganisation] = []ID{1, 2, 3}
	tax.link(Association{Table: "proposal_organisation", Source: "proposal_id", Target: "organisation_id"}, 7, 1)
	tax.link(Association{Table: "proposal_organisation", Source: "proposal_id", Target: "organisation_id"}, 7, 2)

	region := newFakeStore()
	region.all[taxonomy.KindOrganisation] = []ID{1, 2, 3}
	region.all[taxonomy.KindCountry] = []ID{40, 41}
	region.link(Association{Table: "organisation_region", Source: "country_id", Target: "organisation_id"}, 40, 2)
	region.link(Association{Table: "organisation_region", Source: "country_id", Target: "organisation_id"}, 40, 3)

	c := NewComposite(
		Member{Registry: rs.Taxonomy, Resolver: NewEngine(logger.Nop(), rs.Taxonomy, tax, nil, Options{})},
		Member{Registry: rs.Region, Resolver: NewEngine(logger.Nop(), rs.Region, region, nil, Options{})},
	)

	tests := []struct {
		name string
		kind taxonomy.Kind
		bag  Bag
		want []ID
	}{
		{name: "both registries", kind: taxonomy.KindOrganisation, bag: Bag{"proposal_ids": {7}, "country_ids": {40}}, want: []ID{2}},
		{name: "taxonomy only", kind: taxonomy.KindOrganisation, bag: Bag{"proposal_ids": {7}}, want: []ID{1, 2}},
		{name: "region only", kind: taxonomy.KindOrganisation, bag: Bag{"country_ids": {40}}, want: []ID{2, 3}},
		{name: "none", kind: taxonomy.KindOrganisation, bag: Bag{}, want: []ID{1, 2, 3}},
		{name: "region-only kind", kind: taxonomy.KindCountry, bag: Bag{}, want: []ID{40, 41}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Resolve(ctx, tt.kind, tt.bag)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := c.Resolve(ctx, taxonomy.Kind("widget"), Bag{}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
