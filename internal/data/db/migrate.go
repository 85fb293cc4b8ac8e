package db

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/abcd-backend/internal/domain/taxonomy"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(taxonomy.Models()...)
}

// EnsureJoinIndexes adds the (source, target) composite indexes the resolver scans. Each join
// is read in both directions, so both column orders are indexed.
func EnsureJoinIndexes(db *gorm.DB) error {
	for _, j := range taxonomy.Joins() {
		for _, target := range j.Targets {
			for _, cols := range [][2]string{{j.OwnerColumn(), target}, {target, j.OwnerColumn()}} {
				name := fmt.Sprintf("idx_%s_%s", j.Table, strings.Join(cols[:], "_"))
				stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s, %s)", name, j.Table, cols[0], cols[1])
				if err := db.Exec(stmt).Error; err != nil {
					return fmt.Errorf("create %s: %w", name, err)
				}
			}
		}
	}
	return nil
}
