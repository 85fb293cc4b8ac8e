package taxonomy

import (
	"context"

	domain "github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/dbctx"
)

// FilterStore exposes the association and entity repos as the resolver's read side.
type FilterStore struct {
	associations AssociationRepo
	entities     EntityRepo
}

func NewFilterStore(associations AssociationRepo, entities EntityRepo) *FilterStore {
	return &FilterStore{associations: associations, entities: entities}
}

func (s *FilterStore) Lookup(ctx context.Context, assoc filtering.Association, sourceIDs []filtering.ID) ([]filtering.ID, error) {
	return s.associations.Lookup(dbctx.New(ctx), assoc, sourceIDs)
}

func (s *FilterStore) AllIDs(ctx context.Context, kind domain.Kind) ([]filtering.ID, error) {
	return s.entities.AllIDs(dbctx.New(ctx), kind)
}
