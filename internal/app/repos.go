package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/data/repos"
	"github.com/yungbote/abcd-backend/internal/platform/logger"
)

type Repos struct {
	Associations repos.AssociationRepo
	Entities     repos.EntityRepo
	Links        repos.LinkRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Associations: repos.NewAssociationRepo(db, log),
		Entities:     repos.NewEntityRepo(db, log),
		Links:        repos.NewLinkRepo(db, log),
	}
}
