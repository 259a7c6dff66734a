package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/newmeca/meca-server/internal/app"
	"github.com/newmeca/meca-server/internal/repository"
	"github.com/newmeca/meca-server/internal/service"
)

func newPreviewCmd(e *env) *cobra.Command {
	var (
		year     int
		configID string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the points table of a season or a stored configuration",
		Long: "Print the points table of a season or a stored configuration.\n" +
			"A season without a stored configuration shows the default table; nothing is written.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if year == 0 && configID == "" {
				return errors.New("one of --year or --config-id is required")
			}

			db, err := app.OpenDatabase(ctx, e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer db.Close()

			points := service.NewPointsService(repository.NewPointsRepository(db), e.logger)

			var cfg service.PointsConfiguration
			if configID != "" {
				cfg, err = points.GetConfigByID(ctx, configID)
				if err != nil {
					return err
				}
			} else {
				season, err := repository.NewChampionshipRepository(db).FindSeasonByYear(ctx, year)
				if err != nil {
					return fmt.Errorf("%w: %v", service.ErrStorageFailure, err)
				}
				if season == nil {
					return fmt.Errorf("%w: year %d", service.ErrSeasonNotFound, year)
				}
				cfg, _, err = points.PeekConfigForSeason(ctx, season.ID)
				if err != nil {
					return err
				}
			}

			writePreview(cmd.OutOrStdout(), cfg)
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "season year")
	cmd.Flags().StringVar(&configID, "config-id", "", "points configuration id")
	cmd.MarkFlagsMutuallyExclusive("year", "config-id")
	return cmd
}

func writePreview(out io.Writer, cfg service.PointsConfiguration) {
	if cfg.ID == "" {
		fmt.Fprintf(out, "season %s, default configuration (not stored)\n", cfg.SeasonID)
	} else {
		fmt.Fprintf(out, "season %s, configuration %s\n", cfg.SeasonID, cfg.ID)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Place", "1X", "2X", "3X", "4X"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range service.ComputePreview(cfg.PointsConfig) {
		table.Append([]string{
			strconv.Itoa(r.Placement),
			strconv.Itoa(r.Standard1X),
			strconv.Itoa(r.Standard2X),
			strconv.Itoa(r.Standard3X),
			strconv.Itoa(r.FourX),
		})
	}
	table.Render()
}
