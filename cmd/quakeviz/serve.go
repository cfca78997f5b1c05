package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/quakeviz/internal/config"
	"github.com/rickgao/quakeviz/internal/server"
	"github.com/rickgao/quakeviz/internal/version"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve freshly rendered charts over HTTP",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			loader := config.NewLoaderFrom(cmd.String("config"), cfg, logger)
			return serve(ctx, loader, logger)
		},
	}
}

// serve runs the HTTP server until a signal arrives. Config reloads apply
// to feed and chart settings; the listen address and timeouts are fixed
// at startup.
func serve(ctx context.Context, loader *config.Loader, logger *slog.Logger) error {
	cfg := loader.Config()

	src, err := newReloadingSource(cfg, logger)
	if err != nil {
		return err
	}
	loader.OnChange(func(c *config.Config) {
		if err := src.update(c); err != nil {
			logger.Warn("config reload not applied", "error", err)
		}
	})

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.NewHandler(src, server.Options{
			MetricsPath: cfg.Metrics.Path,
			PassTimeout: passTimeout(cfg),
		}, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			"version", version.Version,
			"addr", srv.Addr,
			"feed_url", cfg.Feed.URL,
		)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return loader.Watch(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// passTimeout bounds a request's render pass so that the response can
// still be written before the server's write deadline.
func passTimeout(cfg *config.Config) time.Duration {
	write := cfg.Server.WriteTimeout
	pass := cfg.Feed.Timeout
	if write > 0 && (pass <= 0 || pass >= write) {
		pass = write * 3 / 4
	}
	return pass
}

type sourceState struct {
	runner server.Runner
	page   server.Page
}

// reloadingSource hands out the pipeline built from the latest config.
type reloadingSource struct {
	logger *slog.Logger
	state  atomic.Pointer[sourceState]
}

func newReloadingSource(cfg *config.Config, logger *slog.Logger) (*reloadingSource, error) {
	s := &reloadingSource{logger: logger}
	if err := s.update(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *reloadingSource) update(cfg *config.Config) error {
	p, err := newPipeline(cfg, s.logger)
	if err != nil {
		return err
	}
	s.state.Store(&sourceState{
		runner: p,
		page: server.Page{
			Title:     cfg.Charts.PageTitle,
			PlotlyURL: cfg.Charts.PlotlyURL,
			FeedURL:   cfg.Feed.URL,
		},
	})
	return nil
}

func (s *reloadingSource) Current() (server.Runner, server.Page) {
	st := s.state.Load()
	return st.runner, st.page
}
