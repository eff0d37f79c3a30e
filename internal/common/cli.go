package common

import (
	"log/slog"

	"github.com/dtnitsch/web-text-organizer/models"
	"github.com/urfave/cli/v2"
)

// NewLogger returns the JSON stderr logger used by every command.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by --config and applies flag
// overrides. The default file may be absent; an explicit one may not.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	cfg, err := models.LoadConfig(path, c.IsSet("config"))
	if err != nil {
		return nil, err
	}

	if set := setContext(c, "user-agent"); set != nil {
		cfg.UserAgent = set.String("user-agent")
	}
	if set := setContext(c, "timeout"); set != nil {
		cfg.Timeout = set.Duration("timeout")
	}
	if set := setContext(c, "output-dir"); set != nil {
		cfg.OutputDir = set.String("output-dir")
	}
	if set := setContext(c, "history-db"); set != nil {
		cfg.HistoryDB = set.String("history-db")
	}
	if set := setContext(c, "no-history"); set != nil && set.Bool("no-history") {
		cfg.DisableHistory = true
	}

	return cfg, nil
}

// setContext returns the nearest context in the lineage where name was
// set explicitly. Flags defined both globally and on a command resolve to
// the command's flag set first, so each level is checked in turn.
func setContext(c *cli.Context, name string) *cli.Context {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(name) {
			return ctx
		}
	}
	return nil
}
