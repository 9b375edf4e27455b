package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/js2py/internal/engine"
	"github.com/leapstack-labs/js2py/internal/server"
	"github.com/leapstack-labs/js2py/internal/state"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve translation over HTTP",
		Long: `Start an HTTP service for translation.

Endpoints:
  POST /translate   body: JavaScript source; ?indent=N, ?lang=ts
  POST /check       body: JavaScript source; returns all diagnostics
  GET  /runs/latest most recent build run (when build state exists)
  GET  /runs/{id}   a build run and its files
  GET  /runs/events build runs as a server-sent event stream (with --watch)
  GET  /healthz     liveness`,
		Example: `  # Serve on the configured address
  js2py serve

  # Serve on another port
  js2py serve --addr :9000

  # Rebuild src/ on change and stream each run
  js2py serve --watch src

  # Translate with curl
  curl --data-binary @app.js localhost:8011/translate`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default :8011)")
	cmd.Flags().Duration("read-timeout", 0, "Read header timeout (default 10s)")
	cmd.Flags().Int64("max-body", 0, "Maximum request body in bytes (default 1 MiB)")
	cmd.Flags().String("watch", "", "Watch and rebuild this directory while serving")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	c := NewCommandContext(cmd)
	cfg := c.Cfg
	watchDir, _ := cmd.Flags().GetString("watch")

	// Build state is optional without --watch; /runs answers 404 then.
	var store state.Store
	if _, err := os.Stat(cfg.StatePath); err == nil || watchDir != "" {
		s := state.NewSQLiteStore(c.Logger)
		if err := s.Open(cfg.StatePath); err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		if err := s.Migrate(); err != nil {
			return err
		}
		store = s
	}

	var events *server.RunEvents
	if watchDir != "" {
		events = server.NewRunEvents()
	}

	srv := server.NewServer(server.Config{
		Indent:      cfg.Indent,
		Store:       store,
		Events:      events,
		Addr:        cfg.Serve.Addr,
		ReadTimeout: cfg.Serve.ReadTimeout,
		MaxBody:     cfg.Serve.MaxBody,
		Logger:      c.Logger,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c.Renderer.Success("serving translation API on " + srv.Addr())
	if watchDir == "" {
		return srv.Serve(ctx)
	}

	eng, err := engine.New(engine.Config{
		Indent:     cfg.Indent,
		Suffix:     cfg.Suffix,
		Extensions: cfg.Extensions,
		Jobs:       cfg.Jobs,
		Store:      store,
		Stdout:     io.Discard,
		Logger:     c.Logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return srv.Serve(egctx) })
	eg.Go(func() error { return watchAndPublish(egctx, c, eng, watchDir, events) })
	return eg.Wait()
}

// watchAndPublish rebuilds dir on change and announces every run that
// reached the state store.
func watchAndPublish(ctx context.Context, c *CommandContext, eng *engine.Engine, dir string, events *server.RunEvents) error {
	return eng.Watch(ctx, dir, func(result *engine.BuildResult, err error) {
		if err != nil && ctx.Err() == nil {
			c.Renderer.Error("build failed: " + err.Error())
		}
		if result == nil {
			return
		}
		if err == nil {
			renderBuildResult(c.Renderer, result)
		}
		if result.RunID != "" {
			events.Publish(result.RunID)
		}
	})
}
