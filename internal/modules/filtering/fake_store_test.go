package filtering

import (
	"context"
	"errors"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
)

// row is one join record; a zero target stands for NULL.
type row struct {
	source, target ID
}

// fakeStore keeps join rows per (table, source, target) triple in insertion order.
type fakeStore struct {
	rows    map[Association][]row
	all     map[taxonomy.Kind][]ID
	failOn  string
	lookups int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[Association][]row{}, all: map[taxonomy.Kind][]ID{}}
}

func (s *fakeStore) link(assoc Association, source, target ID) {
	s.rows[assoc] = append(s.rows[assoc], row{source: source, target: target})
}

func (s *fakeStore) Lookup(_ context.Context, assoc Association, sourceIDs []ID) ([]ID, error) {
	s.lookups++
	if s.failOn != "" && assoc.Table == s.failOn {
		return nil, errors.New("connection reset")
	}
	want := map[ID]bool{}
	for _, id := range sourceIDs {
		want[id] = true
	}
	var out []ID
	for _, r := range s.rows[assoc] {
		if want[r.source] && r.target != 0 {
			out = append(out, r.target)
		}
	}
	return out, nil
}

func (s *fakeStore) AllIDs(_ context.Context, kind taxonomy.Kind) ([]ID, error) {
	if s.failOn == kind.Table() {
		return nil, errors.New("connection reset")
	}
	return append([]ID{}, s.all[kind]...), nil
}
