package filtering

import (
	"context"
	"fmt"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
)

// Member pairs a resolver with the registry that decides when it applies.
type Member struct {
	Registry *Registry
	Resolver Resolver
}

// Composite ANDs several registries' resolvers. Only members with applied facets for the target
// kind take part; when none have any, the first member supporting the kind answers alone, which
// yields every id of the kind.
type Composite struct {
	members []Member
}

func NewComposite(members ...Member) *Composite {
	return &Composite{members: members}
}

func (c *Composite) Supports(kind taxonomy.Kind) bool {
	for _, m := range c.members {
		if m.Registry.Supports(kind) {
			return true
		}
	}
	return false
}

func (c *Composite) Resolve(ctx context.Context, kind taxonomy.Kind, bag Bag) ([]ID, error) {
	var (
		primary *Member
		active  []Member
	)
	for i := range c.members {
		m := c.members[i]
		applied, err := m.Registry.Applied(kind, bag)
		if err != nil {
			continue
		}
		if primary == nil {
			primary = &c.members[i]
		}
		if len(applied) > 0 {
			active = append(active, m)
		}
	}
	if primary == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	switch len(active) {
	case 0:
		return primary.Resolver.Resolve(ctx, kind, Bag{})
	case 1:
		return active[0].Resolver.Resolve(ctx, kind, bag)
	}

	results := make([][]ID, 0, len(active))
	for _, m := range active {
		ids, err := m.Resolver.Resolve(ctx, kind, bag)
		if err != nil {
			return nil, err
		}
		results = append(results, ids)
	}
	return Intersect(results...), nil
}
