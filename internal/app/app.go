package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/opendrivego/internal/ctxlog"
	"github.com/specialistvlad/opendrivego/internal/model"
	"github.com/specialistvlad/opendrivego/internal/opendrive"
	"github.com/specialistvlad/opendrivego/internal/road"
	"github.com/specialistvlad/opendrivego/internal/topology"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	loader     model.Loader
	roads      *road.Map
	topology   *topology.Graph
	httpServer *http.Server
}

// NewApp is the constructor for the main application. The summary is written
// to outW and logs to logW. A nil loader selects NewDefaultRegistry.
func NewApp(outW, logW io.Writer, config *Config, loader model.Loader) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = NewDefaultRegistry()
		logger.Debug("Using the default document loaders.")
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
		loader: loader,
	}
}

// Roads returns the road map built by Run, or nil before a successful run.
func (a *App) Roads() *road.Map {
	return a.roads
}

// Run loads the configured document, builds its road map and writes the
// summary. When a listen port is configured it then serves the map until ctx
// is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.DocumentPath)

	m, err := opendrive.Load(ctx, a.config.DocumentPath, a.loader)
	if err != nil {
		return err
	}
	a.roads = m
	a.topology = topology.FromMap(ctx, m)
	a.logger.Info("Road map built.", "segments", m.Len(), "junction_segments", len(m.Junctions()), "dangling_links", a.topology.Dangling())
	if id, found := a.topology.Cycles(); found {
		a.logger.Debug("Road network contains a cycle.", "road", id)
	}

	if err := writeSummary(a.outW, m, a.config.Output); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if a.config.ListenPort > 0 {
		if err := a.serve(ctx); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
