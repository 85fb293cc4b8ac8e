package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/data/repos/taxonomy"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type AssociationRepo = taxonomy.AssociationRepo
type EntityRepo = taxonomy.EntityRepo
type LinkRepo = taxonomy.LinkRepo

type ListQuery = taxonomy.ListQuery
type Page = taxonomy.Page

func NewAssociationRepo(db *gorm.DB, baseLog *logger.Logger) AssociationRepo {
	return taxonomy.NewAssociationRepo(db, baseLog)
}
func NewEntityRepo(db *gorm.DB, baseLog *logger.Logger) EntityRepo {
	return taxonomy.NewEntityRepo(db, baseLog)
}
func NewLinkRepo(db *gorm.DB, baseLog *logger.Logger) LinkRepo {
	return taxonomy.NewLinkRepo(db, baseLog)
}
