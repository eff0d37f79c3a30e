package extract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/web-text-organizer/internal/common"
	"github.com/dtnitsch/web-text-organizer/pkg/db"
	"github.com/dtnitsch/web-text-organizer/pkg/fetcher"
	"github.com/dtnitsch/web-text-organizer/pkg/organizer"
	"github.com/dtnitsch/web-text-organizer/pkg/storage"
	"github.com/urfave/cli/v2"
)

const urlPrompt = "enter website url (e.g., https://example.com): "

// ExtractAction runs a single extraction for the URL argument, prompting
// for one when it is missing.
func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	cfg, err := common.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return cli.Exit(fmt.Sprintf("error loading config: %v", err), 2)
	}

	rawURL := c.Args().First()
	if rawURL == "" {
		rawURL, err = promptURL(c.App.Reader, c.App.Writer)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error reading url: %v", err), 1)
		}
	}

	runner := &Runner{
		Logger:    logger,
		Fetcher:   fetcher.NewFetcher(fetcher.WithTimeout(cfg.Timeout), fetcher.WithUserAgent(cfg.UserAgent)),
		Organizer: organizer.New(),
		Storage:   &storage.Storage{Dir: cfg.OutputDir},
		Out:       c.App.Writer,
	}

	if !cfg.DisableHistory {
		database, err := db.Open(cfg.HistoryDB)
		if err != nil {
			logger.Warn("Run history unavailable", "error", err)
		} else {
			defer database.Close()
			runner.History = database
		}
	}

	if _, err := runner.Run(c.Context, rawURL); err != nil {
		var fetchErr *fetcher.FetchError
		if errors.As(err, &fetchErr) {
			fmt.Fprintf(c.App.Writer, "error fetching webpage: %v\n", err)
		} else {
			fmt.Fprintf(c.App.Writer, "error occurred: %v\n", err)
		}
		return cli.Exit("", 1)
	}

	return nil
}

func promptURL(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, urlPrompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
