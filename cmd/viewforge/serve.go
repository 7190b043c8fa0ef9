package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viewforge-dev/viewforge"
	"github.com/viewforge-dev/viewforge/internal/config"
	"github.com/viewforge-dev/viewforge/internal/dev"
	"github.com/viewforge-dev/viewforge/pkg/render"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		devMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a preview server for the current project",
		Long: `Serve starts an HTTP server from viewforge.json in the current
directory (defaults apply when the file is missing). It serves the
project's static directory and a welcome page rendered with the
library itself. With --dev, browsers reload when watched files change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if errors.Is(err, config.ErrNotFound) {
				cfg = config.New()
			} else if err != nil {
				return err
			}

			if addr != "" {
				cfg.Addr = addr
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slogLevel(cfg.Log.Level),
			}))

			app := viewforge.New(viewforge.Config{
				Addr:         cfg.Addr,
				Logger:       logger,
				Metrics:      cfg.Metrics,
				Tracing:      cfg.Tracing,
				DevMode:      devMode,
				WatchPaths:   cfg.Dev.Watch,
				StaticDir:    cfg.Static.Dir,
				StaticPrefix: cfg.Static.Prefix,
			})
			app.Page("/", welcomePage(cfg.Name, devMode), viewforge.WithLayout(welcomeLayout))

			info("serving on %s", cfg.Addr)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides viewforge.json)")
	cmd.Flags().BoolVarP(&devMode, "dev", "d", false, "Enable live reload and file watching")

	return cmd
}

// slogLevel maps a viewforge.json level string to a slog.Level.
func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// welcomeLayout reads the slots the body contributed and wraps them in a
// minimal document.
func welcomeLayout(ctx *render.Context) error {
	ctx.Append("<!DOCTYPE html>\n<html><head>")
	fmt.Fprintf(ctx.Buffer(), "<title>%s</title>", render.EscapeHTML(ctx.Content("title")))
	ctx.Append("</head>\n<body>")
	ctx.FlushToResponse()

	ctx.Append(ctx.Content("body"))
	if ctx.HasContent("scripts") {
		ctx.Append(ctx.Content("scripts"))
	}
	ctx.Append("</body></html>\n")
	return nil
}

// welcomePage renders the default project page.
func welcomePage(name string, devMode bool) render.Fragment {
	if name == "" {
		name = "viewforge project"
	}
	return func(ctx *render.Context) error {
		ctx.AppendContent("title", name)
		if devMode {
			ctx.AppendContent("scripts", dev.ReloadClientScript)
		}
		ctx.Append("<h1>")
		ctx.AppendHTML(name)
		ctx.Append("</h1>\n<p>Edit viewforge.json and register pages to get started.</p>\n")
		return nil
	}
}
