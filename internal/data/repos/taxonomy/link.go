package taxonomy

import (
	"time"

	"gorm.io/gorm"

	domain "github.com/yungbote/abcd-backend/internal/domain/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/dbctx"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type LinkRepo interface {
	// Create inserts a join row unless an identical one exists. It reports whether a row was added.
	Create(dbc dbctx.Context, join domain.JoinSpec, targetColumn string, ownerID, targetID int64) (bool, error)
	// Delete removes every join row matching the pair. It reports whether any row was removed.
	Delete(dbc dbctx.Context, join domain.JoinSpec, targetColumn string, ownerID, targetID int64) (bool, error)
}

type linkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLinkRepo(db *gorm.DB, baseLog *logger.Logger) LinkRepo {
	return &linkRepo{
		db:  db,
		log: baseLog.With("repo", "LinkRepo"),
	}
}

func (r *linkRepo) Create(dbc dbctx.Context, join domain.JoinSpec, targetColumn string, ownerID, targetID int64) (bool, error) {
	conn := dbc.Conn(r.db)
	var count int64
	if err := conn.
		Model(join.Model()).
		Where(join.OwnerColumn()+" = ? AND "+targetColumn+" = ?", ownerID, targetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	row := map[string]interface{}{
		join.OwnerColumn(): ownerID,
		targetColumn:       targetID,
		"created_at":       time.Now().UTC(),
	}
	if err := conn.Model(join.Model()).Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *linkRepo) Delete(dbc dbctx.Context, join domain.JoinSpec, targetColumn string, ownerID, targetID int64) (bool, error) {
	res := dbc.Conn(r.db).
		Where(join.OwnerColumn()+" = ? AND "+targetColumn+" = ?", ownerID, targetID).
		Delete(join.Model())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
