// Command scorecard ranks, converts and charts scorecard files without a
// running server.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	leaderboardservice "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/application"
	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/parsers"
	rounddb "github.com/Black-And-White-Club/golf-trip/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/golf-trip/internal/observability"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/trace/noop"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// card is one scorecard file loaded into an in-memory trip.
type card struct {
	trip  *rounddomain.Trip
	round *rounddomain.Round
	board *leaderboardservice.LeaderboardService
	svc   *roundservice.RoundService
}

func newApp(stdout, stderr io.Writer) *cli.App {
	var logger *slog.Logger

	nameFlag := &cli.StringFlag{Name: "name", Usage: "round name (defaults to the file name)"}
	outFlag := &cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path", Required: true}

	return &cli.App{
		Name:      "scorecard",
		Usage:     "rank and convert golf scorecards",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "debug, info, warn or error"},
		},
		Before: func(c *cli.Context) error {
			logger = observability.NewLogger(stderr, observability.LoggerConfig{
				Environment: "development",
				Level:       c.String("log-level"),
				ServiceName: "scorecard",
			})
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "leaderboard",
				Usage:     "print the ranked leaderboard of a scorecard",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{nameFlag},
				Action: func(c *cli.Context) error {
					cd, err := loadCard(c, logger)
					if err != nil {
						return err
					}
					view, err := cd.board.Leaderboard(c.Context, cd.trip, cd.round.ID)
					if err != nil {
						return err
					}
					return printLeaderboard(c.App.Writer, view)
				},
			},
			{
				Name:      "snapshot",
				Usage:     "print the one-line leaderboard summary",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{nameFlag},
				Action: func(c *cli.Context) error {
					cd, err := loadCard(c, logger)
					if err != nil {
						return err
					}
					line, err := cd.board.Snapshot(c.Context, cd.trip, cd.round.ID)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(c.App.Writer, line)
					return err
				},
			},
			{
				Name:      "chart",
				Usage:     "render the leaderboard as a PNG bar chart",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{nameFlag, outFlag},
				Action: func(c *cli.Context) error {
					cd, err := loadCard(c, logger)
					if err != nil {
						return err
					}
					png, err := cd.board.Chart(c.Context, cd.trip, cd.round.ID)
					if err != nil {
						return err
					}
					return writeOutput(c, png)
				},
			},
			{
				Name:      "convert",
				Usage:     "write a scorecard as a normalised XLSX workbook",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{nameFlag, outFlag},
				Action: func(c *cli.Context) error {
					cd, err := loadCard(c, logger)
					if err != nil {
						return err
					}
					data, err := cd.svc.ExportScorecard(c.Context, cd.trip.ID, cd.round.ID)
					if err != nil {
						return err
					}
					return writeOutput(c, data)
				},
			},
			{
				Name:  "template",
				Usage: "print the par template for a course total",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "par", Value: 72, Usage: "course par"},
					&cli.IntFlag{Name: "holes", Value: rounddomain.EighteenHoles, Usage: "9 or 18"},
				},
				Action: func(c *cli.Context) error {
					holes := c.Int("holes")
					if !rounddomain.ValidHoles(holes) {
						return fmt.Errorf("%w: %d", roundservice.ErrInvalidHoles, holes)
					}
					if c.Int("par") < 0 {
						return fmt.Errorf("par must not be negative, got %d", c.Int("par"))
					}
					pars := rounddomain.BuildParTemplate(c.Int("par"), holes)
					parts := make([]string, len(pars))
					for i, p := range pars {
						parts[i] = strconv.Itoa(p)
					}
					_, err := fmt.Fprintln(c.App.Writer, strings.Join(parts, " "))
					return err
				},
			},
		},
	}
}

// loadCard imports the FILE argument as the only round of a new in-memory
// trip whose roster is the card's players.
func loadCard(c *cli.Context, logger *slog.Logger) (*card, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("%s expects exactly one FILE argument", c.Command.Name)
	}
	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scorecard: %w", err)
	}

	tracer := noop.NewTracerProvider().Tracer("scorecard")
	svc := roundservice.NewRoundService(
		rounddb.NewMemoryRepository(),
		parsers.NewFactory(),
		logger,
		roundservice.NoOpMetrics{},
		tracer,
		roundservice.Defaults{Holes: rounddomain.EighteenHoles},
	)
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	name := c.String("name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	trip, err := svc.CreateTrip(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	round, err := svc.ImportScorecard(ctx, trip.ID, name, filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	trip, err = svc.GetTrip(ctx, trip.ID)
	if err != nil {
		return nil, err
	}
	return &card{
		trip:  trip,
		round: round,
		board: leaderboardservice.NewLeaderboardService(logger, tracer),
		svc:   svc,
	}, nil
}

func printLeaderboard(w io.Writer, view *leaderboardservice.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%d holes, %s)\n", view.RoundName, view.Holes, view.Key)
	fmt.Fprintln(tw, "POS\tPLAYER\tTHRU\tOUT\tIN\tTOTAL\tHCP\tNET\tVS PAR")
	for _, row := range view.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			row.Position, row.Player, row.Filled, row.Out, row.In, row.Total, row.Handicap, row.Net, row.VsPar)
	}
	return tw.Flush()
}

func writeOutput(c *cli.Context, data []byte) error {
	out := c.String("out")
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(c.App.Writer, "wrote %s (%d bytes)\n", out, len(data))
	return nil
}
