package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbtea/dbtea/internal/app"
	"github.com/dbtea/dbtea/internal/config"
	"github.com/dbtea/dbtea/internal/db/connection"
	"github.com/dbtea/dbtea/internal/db/discovery"
	"github.com/dbtea/dbtea/internal/history"
	"github.com/dbtea/dbtea/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.Setup(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not set up logging: %v\n", err)
		os.Exit(1)
	}

	keys, collisions, err := cfg.BuildKeymap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid keymap configuration: %v\n", err)
		os.Exit(1)
	}
	for _, col := range collisions {
		logger.WithField("chord", col.Chord).
			WithField("bound_to", col.Existing.String()).
			Warn("pane chord shadowed by explicit binding")
	}

	editing, err := cfg.EditingMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid editing mode: %v\n", err)
		os.Exit(1)
	}

	var store *history.Store
	if cfg.History.Enabled {
		dir, err := config.GetConfigPath()
		if err == nil {
			if err := os.MkdirAll(dir, 0755); err == nil {
				store, err = history.NewStore(filepath.Join(dir, "history.db"), cfg.History.MaxEntries)
				if err != nil {
					logger.WithError(err).Warn("query history disabled")
				}
			}
		}
	}
	if store != nil {
		defer store.Close()
	}

	conns := connection.NewManager()
	defer conns.CloseAll()
	if envCfg := discovery.EnvironmentConfig(); envCfg != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := conns.Connect(ctx, *envCfg); err != nil {
			logger.WithError(err).Warn("could not connect from environment")
		}
		cancel()
	}

	model := app.New(cfg, keys, editing, logger, conns, store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
