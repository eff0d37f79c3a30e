package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/web-text-organizer/internal/extract"
	"github.com/dtnitsch/web-text-organizer/internal/history"
	"github.com/dtnitsch/web-text-organizer/models"
	"github.com/urfave/cli/v2"
)

// extractFlags are accepted both globally and by the extract command.
var extractFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "user-agent",
		Usage: "User-Agent header sent with the request",
	},
	&cli.DurationFlag{
		Name:  "timeout",
		Usage: "HTTP request timeout",
		Value: models.DefaultTimeout,
	},
	&cli.StringFlag{
		Name:    "output-dir",
		Aliases: []string{"o"},
		Usage:   "directory the extracted JSON is written to",
		Value:   models.DefaultOutputDir,
	},
}

func main() {
	app := &cli.App{
		Name:      "wto",
		Usage:     "fetch a web page and organize its text into headings, paragraphs, lists, links, quotes and other",
		ArgsUsage: "[URL]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to YAML config file",
				Value: models.DefaultConfigFile,
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output",
			},
			&cli.StringFlag{
				Name:  "history-db",
				Usage: "path to the run history database (default: next to the binary)",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "do not record runs in the history database",
			},
		}, extractFlags...),
		Action: extract.ExtractAction,
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "fetch a URL and write {host}_extracted.json",
				ArgsUsage: "[URL]",
				Flags:     extractFlags,
				Action:    extract.ExtractAction,
			},
			{
				Name:  "history",
				Usage: "list recorded extraction runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of runs to show (0 = all)",
						Value: 20,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: table, json or yaml",
						Value: "table",
					},
				},
				Action: history.ListAction,
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "show one run as YAML",
						ArgsUsage: "<run-id>",
						Action:    history.ShowAction,
					},
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
