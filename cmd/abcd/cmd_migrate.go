package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/abcd-backend/internal/data/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create tables and join indexes",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	dbs, err := db.Open(db.ConfigFromEnv(), log)
	if err != nil {
		return err
	}
	defer dbs.Close()

	if err := db.AutoMigrateAll(dbs.DB()); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	if err := db.EnsureJoinIndexes(dbs.DB()); err != nil {
		return fmt.Errorf("join indexes: %w", err)
	}
	log.Info("migration complete")
	return nil
}
