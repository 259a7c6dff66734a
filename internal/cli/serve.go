package cli

import (
	"github.com/spf13/cobra"

	"github.com/newmeca/meca-server/internal/app"
)

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.NewApp(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}
