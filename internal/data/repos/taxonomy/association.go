package taxonomy

import (
	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/modules/filtering"
	"github.com/yungbote/abcd-backend/internal/platform/dbctx"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type AssociationRepo interface {
	// Lookup reads assoc.Target for rows whose assoc.Source is in ids. NULL targets are
	// skipped, duplicates are kept, rows come back in insertion order.
	Lookup(dbc dbctx.Context, assoc filtering.Association, ids []int64) ([]int64, error)
}

type associationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssociationRepo(db *gorm.DB, baseLog *logger.Logger) AssociationRepo {
	return &associationRepo{
		db:  db,
		log: baseLog.With("repo", "AssociationRepo"),
	}
}

func (r *associationRepo) Lookup(dbc dbctx.Context, assoc filtering.Association, ids []int64) ([]int64, error) {
	out := []int64{}
	if len(ids) == 0 {
		return out, nil
	}
	// column names come from the validated facet registry
	q := dbc.Conn(r.db).
		Table(assoc.Table).
		Where(assoc.Source+" IN ?", ids).
		Where(assoc.Target + " IS NOT NULL")
	if assoc.LiveOnly {
		q = q.Where("deleted_at IS NULL")
	}
	if err := q.Order("id").Pluck(assoc.Target, &out).Error; err != nil {
		return nil, err
	}
	if out == nil {
		out = []int64{}
	}
	return out, nil
}
