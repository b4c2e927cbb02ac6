package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/quickchat/quickchat/migration"
)

// migrateCommand データベースマイグレーションコマンド
func migrateCommand() *cobra.Command {
	var dropDB bool

	cmd := cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		Run: func(cmd *cobra.Command, args []string) {
			logger := getCLILogger()
			defer logger.Sync()

			engine, err := c.getDatabase(logger)
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			if dropDB {
				logger.Info("Dropping all tables...")
				if err := migration.DropAll(engine); err != nil {
					logger.Fatal("failed to drop tables", zap.Error(err))
				}
				logger.Info("all tables have been dropped")
			}
			logger.Info("Start database schema migration...")
			if _, err := migration.Migrate(engine); err != nil {
				logger.Fatal("failed to migrate", zap.Error(err))
			}
			logger.Info("Finished database schema migration")
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dropDB, "reset", false, "whether to truncate database (drop all tables)")

	return &cmd
}
