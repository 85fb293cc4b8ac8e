package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/data/repos"
	"github.com/yungbote/abcd-backend/internal/data/repos/taxonomy"
	"github.com/yungbote/abcd-backend/internal/data/repos/testutil"
	domain "github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/apierr"
)

type catalogFixture struct {
	db      *gorm.DB
	catalog CatalogService
	links   LinkService
	inv     *countingInvalidator

	topic    int64
	outcome  int64
	courses  []int64
	draft    int64
	country  int64
	orgs     []int64
	proposal int64
}

type countingInvalidator struct {
	calls int
	err   error
}

func (c *countingInvalidator) Invalidate(context.Context) error {
	c.calls++
	return c.err
}

func newCatalogFixture(t *testing.T, strategy string) *catalogFixture {
	t.Helper()
	db := testutil.SQLite(t)
	ctx := context.Background()
	log := testutil.Logger(t)

	f := &catalogFixture{db: db, inv: &countingInvalidator{}}
	f.topic = testutil.SeedNodes(t, ctx, db, domain.KindTopic, "Health")[0]
	f.outcome = testutil.SeedNodes(t, ctx, db, domain.KindOutcome, "Resilience")[0]
	f.courses = testutil.SeedNodes(t, ctx, db, domain.KindCourse, "Sleep 101", "Walking", "Sleep 201")
	f.draft = testutil.SeedNode(t, ctx, db, domain.KindCourse, "Sleep draft", domain.StatusDraft)
	for _, c := range append(append([]int64{}, f.courses...), f.draft) {
		testutil.SeedJoin(t, ctx, db, &domain.CourseTopic{CourseID: c, TopicID: testutil.Ptr(f.topic)})
	}
	for _, c := range []int64{f.courses[1], f.courses[2], f.draft} {
		testutil.SeedJoin(t, ctx, db, &domain.CourseOutcome{CourseID: c, OutcomeID: testutil.Ptr(f.outcome)})
	}

	f.country = testutil.SeedNodes(t, ctx, db, domain.KindCountry, "Kenya")[0]
	f.orgs = testutil.SeedNodes(t, ctx, db, domain.KindOrganisation, "Org A", "Org B", "Org C")
	f.proposal = testutil.SeedNodes(t, ctx, db, domain.KindProposal, "Proposal")[0]
	testutil.SeedJoin(t, ctx, db, &domain.OrganisationRegion{OrganisationID: f.orgs[1], CountryID: f.country})
	testutil.SeedJoin(t, ctx, db, &domain.OrganisationRegion{OrganisationID: f.orgs[2], CountryID: f.country})
	testutil.SeedJoin(t, ctx, db, &domain.ProposalOrganisation{ProposalID: f.proposal, OrganisationID: f.orgs[0]})
	testutil.SeedJoin(t, ctx, db, &domain.ProposalOrganisation{ProposalID: f.proposal, OrganisationID: f.orgs[1]})

	regs, err := filtering.LoadRegistries(log)
	require.NoError(t, err)
	entities := repos.NewEntityRepo(db, log)
	store := taxonomy.NewFilterStore(repos.NewAssociationRepo(db, log), entities)
	composite := filtering.NewComposite(
		filtering.Member{Registry: regs.Taxonomy, Resolver: filtering.NewEngine(log, regs.Taxonomy, store, nil, filtering.Options{})},
		filtering.Member{Registry: regs.Region, Resolver: filtering.NewEngine(log, regs.Region, store, nil, filtering.Options{})},
	)
	overrides := map[domain.Kind]filtering.Resolver{}
	if strategy == filtering.StrategyPushdown {
		overrides[domain.KindCourse] = taxonomy.NewPushdownResolver(db, log, regs.Taxonomy, nil)
	}
	f.catalog = NewCatalogService(log, entities, regs, composite, overrides)
	f.links = NewLinkService(db, log, repos.NewLinkRepo(db, log), f.inv)
	return f
}

func courseIDs(t *testing.T, page *CatalogPage) []int64 {
	t.Helper()
	items := *page.Items.(*[]*domain.Course)
	out := make([]int64, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestCatalogListCourses(t *testing.T) {
	for _, strategy := range []string{filtering.StrategyIntersect, filtering.StrategyPushdown} {
		t.Run(strategy, func(t *testing.T) {
			f := newCatalogFixture(t, strategy)
			ctx := context.Background()

			page, err := f.catalog.List(ctx, domain.KindCourse, filtering.Bag{"topic_ids": {f.topic}, "outcome_ids": {f.outcome}}, ListParams{})
			require.NoError(t, err)
			assert.Equal(t, []int64{f.courses[1], f.courses[2]}, courseIDs(t, page))
			assert.Equal(t, int64(2), page.Total)
			assert.Equal(t, 1, page.Page)
			assert.Equal(t, DefaultPageLimit, page.Limit)

			page, err = f.catalog.List(ctx, domain.KindCourse, filtering.Bag{"topic_ids": {f.topic}}, ListParams{Status: StatusAny, Q: "sleep", Limit: 500})
			require.NoError(t, err)
			assert.Equal(t, []int64{f.courses[0], f.courses[2], f.draft}, courseIDs(t, page))
			assert.Equal(t, MaxPageLimit, page.Limit)

			page, err = f.catalog.List(ctx, domain.KindCourse, filtering.Bag{}, ListParams{Page: 2, Limit: 2})
			require.NoError(t, err)
			assert.Equal(t, []int64{f.courses[2]}, courseIDs(t, page))
			assert.Equal(t, int64(3), page.Total)

			page, err = f.catalog.List(ctx, domain.KindCourse, filtering.Bag{"topic_ids": {999}}, ListParams{})
			require.NoError(t, err)
			assert.Empty(t, courseIDs(t, page))
			assert.Equal(t, int64(0), page.Total)
		})
	}
}

func TestCatalogRegionAndTaxonomyCombine(t *testing.T) {
	f := newCatalogFixture(t, filtering.StrategyIntersect)
	ctx := context.Background()

	ids, err := f.catalog.ResolveIDs(ctx, domain.KindOrganisation, filtering.Bag{"country_ids": {f.country}, "proposal_ids": {f.proposal}})
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{f.orgs[1]}, ids)

	ids, err = f.catalog.ResolveIDs(ctx, domain.KindOrganisation, filtering.Bag{"country_ids": {f.country}})
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{f.orgs[1], f.orgs[2]}, ids)

	// region facets do not apply to courses
	ids, err = f.catalog.ResolveIDs(ctx, domain.KindCourse, filtering.Bag{"country_ids": {f.country}})
	require.NoError(t, err)
	assert.Equal(t, []filtering.ID{f.courses[0], f.courses[1], f.courses[2], f.draft}, ids)
}

func TestCatalogErrors(t *testing.T) {
	f := newCatalogFixture(t, filtering.StrategyIntersect)
	ctx := context.Background()

	_, err := f.catalog.List(ctx, domain.Kind("widget"), filtering.Bag{}, ListParams{})
	ae, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, "unknown_kind", ae.Code)
	assert.True(t, errors.Is(err, filtering.ErrUnknownKind))

	_, err = f.catalog.Get(ctx, domain.KindCourse, uuid.New())
	ae, ok = apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, "not_found", ae.Code)
	assert.Equal(t, 404, ae.Status)

	var course domain.Course
	require.NoError(t, f.db.First(&course, f.courses[0]).Error)
	got, err := f.catalog.Get(ctx, domain.KindCourse, course.UUID)
	require.NoError(t, err)
	assert.Equal(t, f.courses[0], got.(*domain.Course).ID)

	require.NoError(t, f.db.Migrator().DropTable("course_outcome"))
	_, err = f.catalog.List(ctx, domain.KindCourse, filtering.Bag{"topic_ids": {f.topic}, "outcome_ids": {f.outcome}}, ListParams{})
	ae, ok = apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, "lookup_failed", ae.Code)
	assert.True(t, errors.Is(err, filtering.ErrLookupFailed))
}

func TestCatalogFacets(t *testing.T) {
	f := newCatalogFixture(t, filtering.StrategyIntersect)
	infos := f.catalog.Facets()
	byKind := map[domain.Kind]FacetInfo{}
	for _, info := range infos {
		byKind[info.Kind] = info
		assert.NotContains(t, info.Taxonomy, filtering.Facet(info.Kind.Facet()))
	}
	require.Contains(t, byKind, domain.KindOrganisation)
	assert.Contains(t, byKind[domain.KindOrganisation].Region, filtering.Facet("country_ids"))
	assert.Contains(t, byKind[domain.KindBehaviour].Taxonomy, filtering.Facet("topic_ids"))
	assert.Empty(t, byKind[domain.KindCountry].Taxonomy)
}

func TestLinkService(t *testing.T) {
	f := newCatalogFixture(t, filtering.StrategyIntersect)
	ctx := context.Background()

	res, err := f.links.Link(ctx, "course_outcome", LinkRequest{SourceID: f.courses[0], TargetID: f.outcome})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, "outcome_id", res.Column)
	assert.Equal(t, 1, f.inv.calls)

	res, err = f.links.Link(ctx, "course_outcome", LinkRequest{SourceID: f.courses[0], TargetID: f.outcome})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 1, f.inv.calls, "no-op links do not invalidate")

	ids, err := f.catalog.ResolveIDs(ctx, domain.KindCourse, filtering.Bag{"outcome_ids": {f.outcome}})
	require.NoError(t, err)
	assert.Contains(t, ids, f.courses[0])

	res, err = f.links.Unlink(ctx, "course_outcome", LinkRequest{SourceID: f.courses[0], TargetID: f.outcome})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, f.inv.calls)

	f.inv.err = errors.New("redis down")
	_, err = f.links.Link(ctx, "course_topic", LinkRequest{SourceID: f.courses[0], TargetID: f.topic, TargetColumn: "sub_topic_id"})
	require.NoError(t, err, "invalidation failures are logged, not returned")

	_, err = f.links.Link(ctx, "course_widget", LinkRequest{SourceID: 1, TargetID: 2})
	ae, ok := apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)

	_, err = f.links.Link(ctx, "course_topic", LinkRequest{SourceID: 1, TargetID: 2, TargetColumn: "title"})
	ae, ok = apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, "invalid_request", ae.Code)

	_, err = f.links.Unlink(ctx, "course_topic", LinkRequest{SourceID: 0, TargetID: 2})
	ae, ok = apierr.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
}
