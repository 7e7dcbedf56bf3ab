package app

import (
	"errors"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/studyfocus/internal/config"
	"github.com/ayoisaiah/studyfocus/internal/session"
	"github.com/ayoisaiah/studyfocus/internal/stats"
	"github.com/ayoisaiah/studyfocus/internal/store"
	"github.com/ayoisaiah/studyfocus/internal/timeutil"
	"github.com/ayoisaiah/studyfocus/internal/ui"
)

// env holds everything a command needs. It is built per command because
// some config overrides come from subcommand flags.
type env struct {
	cfg      *config.Config
	settings *config.Manager
	logger   *session.Logger
	reader   *stats.Reader
	clock    timeutil.Clock
	closers  []func() error
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			slog.Warn("cleanup failed", slog.Any("error", err))
		}
	}
}

// openRecords opens the database at path. Any failure other than another
// running instance degrades to in-memory records for this run.
func openRecords(path string) (store.Records, func() error, error) {
	client, err := store.Open(path)
	if err == nil {
		return client, client.Close, nil
	}

	if errors.Is(err, store.ErrAlreadyRunning) {
		return nil, nil, err
	}

	slog.Warn(
		"database unavailable, sessions will not be saved",
		slog.String("path", path),
		slog.Any("error", err),
	)

	pterm.Warning.Printfln("unable to open %s, sessions will not be saved: %v", path, err)

	return store.NewMemory(), func() error { return nil }, nil
}

// newEnv wires the domain components over records.
func newEnv(cfg *config.Config, records store.Records, clock timeutil.Clock) *env {
	logger := session.NewLogger(records, clock)

	return &env{
		cfg:      cfg,
		settings: config.NewManager(records, cfg.Timer),
		logger:   logger,
		reader:   stats.NewReader(logger),
		clock:    clock,
	}
}

func setup(ctx *cli.Context) (*env, error) {
	paths, err := config.ResolvePaths()
	if err != nil {
		return nil, err
	}

	cfg, err := config.New(
		config.WithPaths(paths),
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	closeLog := initLogger(paths.LogFile, cfg.Log.Level)

	ui.DarkTheme = cfg.Display.DarkTheme

	records, closeDB, err := openRecords(paths.DBFile)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	e := newEnv(cfg, records, timeutil.System)
	e.closers = append(e.closers, closeLog, closeDB)

	slog.Debug("config loaded", slog.Any("config", cfg))

	return e, nil
}
