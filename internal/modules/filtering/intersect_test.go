package filtering

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sorted(ids []ID) []ID {
	out := append([]ID{}, ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]ID
		want  []ID
	}{
		{name: "no lists", lists: nil, want: []ID{}},
		{name: "single list dedups", lists: [][]ID{{3, 1, 3, 2}}, want: []ID{3, 1, 2}},
		{name: "two lists", lists: [][]ID{{11, 12, 13}, {12, 13, 14}}, want: []ID{12, 13}},
		{name: "duplicates within one list do not count twice", lists: [][]ID{{1, 1, 2}, {2, 3}}, want: []ID{2}},
		{name: "disjoint", lists: [][]ID{{1, 2}, {3, 4}}, want: []ID{}},
		{name: "one empty list", lists: [][]ID{{1, 2}, {}}, want: []ID{}},
		{name: "three lists", lists: [][]ID{{1, 2, 3, 4}, {4, 3, 2}, {2, 4, 9}}, want: []ID{2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intersect(tt.lists...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Intersect mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIntersectCommutativeAndIdempotent(t *testing.T) {
	a := []ID{5, 1, 7, 1, 9, 3}
	b := []ID{3, 3, 9, 2, 5}

	if diff := cmp.Diff(sorted(Intersect(a, b)), sorted(Intersect(b, a))); diff != "" {
		t.Fatalf("intersect(a,b) != intersect(b,a):\n%s", diff)
	}
	if diff := cmp.Diff(Dedup(a), Intersect(a, a)); diff != "" {
		t.Fatalf("intersect(a,a) != dedup(a):\n%s", diff)
	}
	for _, id := range Intersect(a, b) {
		if !contains(a, id) || !contains(b, id) {
			t.Fatalf("%d is not in both inputs", id)
		}
	}
}

func TestDedup(t *testing.T) {
	got := Dedup([]ID{2, 2, 1, 2, 1})
	if diff := cmp.Diff([]ID{2, 1}, got); diff != "" {
		t.Fatalf("Dedup mismatch (-want +got):\n%s", diff)
	}
}

func contains(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
