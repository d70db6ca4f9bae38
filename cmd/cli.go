package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Dosada05/zone-cup/models"
	"github.com/Dosada05/zone-cup/utils"
)

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			conn, err := openDatabase(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			return conn.Close()
		},
	}

	standingsCmd = &cobra.Command{
		Use:   "standings [zone...]",
		Short: "Print zone tables (all zones when none given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, func(ctx context.Context, app *application) error {
				for _, zone := range zonesOrAll(app, args) {
					rows, err := app.tournament.Standings(ctx, zone)
					if err != nil {
						return err
					}
					printStandings(cmd.OutOrStdout(), zone, rows)
				}
				return nil
			})
		},
	}

	fixturesCmd = &cobra.Command{
		Use:   "fixtures [zone...]",
		Short: "Print group fixtures that still have no result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd, func(ctx context.Context, app *application) error {
				out := cmd.OutOrStdout()
				for _, zone := range zonesOrAll(app, args) {
					fixtures, err := app.tournament.PendingFixtures(ctx, zone)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "Zone %s: %d pending\n", zone, len(fixtures))
					for _, f := range fixtures {
						fmt.Fprintf(out, "  %s vs %s\n", f.HomeTeam, f.AwayTeam)
					}
				}
				return nil
			})
		},
	}

	hashPasswordCmd = &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH (reads stdin when no argument)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return err
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password must not be empty")
			}

			hash, err := utils.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(migrateCmd, standingsCmd, fixturesCmd, hashPasswordCmd)
}

// withApplication opens the store read-side, without a notifier or uploader.
func withApplication(cmd *cobra.Command, fn func(ctx context.Context, app *application) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	conn, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, newApplication(conn, cfg, nil, nil, nil, logger))
}

func zonesOrAll(app *application, args []string) []string {
	if len(args) > 0 {
		return args
	}
	return app.tournament.Zones()
}

func printStandings(out io.Writer, zone string, rows []models.StandingRow) {
	fmt.Fprintf(out, "Zone %s\n", zone)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tTeam\tP\tW\tD\tL\tGF\tGA\tGD\tPts\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t\n",
			r.Position, r.Team, r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points)
	}
	tw.Flush()
	fmt.Fprintln(out)
}
