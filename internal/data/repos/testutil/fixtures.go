package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
)

// SeedNodes creates one published entity of kind per title and returns their ids in order.
func SeedNodes(tb testing.TB, ctx context.Context, tx *gorm.DB, kind taxonomy.Kind, titles ...string) []int64 {
	tb.Helper()
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		id := SeedNode(tb, ctx, tx, kind, title, taxonomy.StatusPublished)
		ids = append(ids, id)
	}
	return ids
}

func SeedNode(tb testing.TB, ctx context.Context, tx *gorm.DB, kind taxonomy.Kind, title, status string) int64 {
	tb.Helper()
	model, ok := taxonomy.NewModel(kind)
	if !ok {
		tb.Fatalf("seed %s: unknown kind", kind)
	}
	node := nodeOf(model)
	node.Title = title
	node.Status = status
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		tb.Fatalf("seed %s: %v", kind, err)
	}
	return node.ID
}

// SeedJoin inserts a join row through the typed model so defaults apply.
func SeedJoin(tb testing.TB, ctx context.Context, tx *gorm.DB, row interface{}) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed join %T: %v", row, err)
	}
}

func nodeOf(model interface{}) *taxonomy.Node {
	if n, ok := model.(interface{ GetNode() *taxonomy.Node }); ok {
		return n.GetNode()
	}
	panic("model without node")
}

func Ptr(v int64) *int64 { return &v }
