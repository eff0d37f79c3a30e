package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dtnitsch/web-text-organizer/internal/common"
	"github.com/dtnitsch/web-text-organizer/models"
	dbpkg "github.com/dtnitsch/web-text-organizer/pkg/db"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	database, err := dbpkg.Open(cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// ListAction prints recorded runs, newest first.
func ListAction(c *cli.Context) error {
	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	return writeRuns(c.App.Writer, runs, strings.ToLower(c.String("format")))
}

// ShowAction prints a single run as YAML.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("missing run ID. Run 'wto history' to list runs")
	}
	runID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID: %s", c.Args().First())
	}

	database, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer database.Close()

	run, err := database.GetRun(runID)
	if err != nil {
		if errors.Is(err, dbpkg.ErrRunNotFound) {
			return cli.Exit(err.Error(), 1)
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	return writeRuns(c.App.Writer, run, "yaml")
}

func writeRuns(w io.Writer, v any, format string) error {
	if runs, ok := v.([]models.RunRecord); ok && runs == nil {
		v = []models.RunRecord{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "", "table":
		runs, ok := v.([]models.RunRecord)
		if !ok {
			return fmt.Errorf("table format needs a run list")
		}
		writeTable(w, runs)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func writeTable(w io.Writer, runs []models.RunRecord) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Extracted", "Status", "Chars", "Entries", "Lang", "URL"})

	for _, r := range runs {
		t.AppendRow(table.Row{
			r.RunID,
			r.ExtractedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status,
			r.TotalCharacters,
			r.EntryCount,
			r.Language,
			r.PageURL,
		})
	}
	t.Render()

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'wto history show <id>' to see details\n")
}
