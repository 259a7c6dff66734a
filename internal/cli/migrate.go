package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newmeca/meca-server/pkg/database"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(cmd.Context(),
				database.WithDriver(e.cfg.DBDriver),
				database.WithDataSource(e.cfg.DBPath),
			)
			if err != nil {
				return fmt.Errorf("database init failed: %w", err)
			}
			defer db.Close()

			if err := database.Migrate(db); err != nil {
				return err
			}
			e.logger.Info("database schema up to date")
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
