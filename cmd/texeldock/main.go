// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeldock/main.go
// Summary: Interactive demo shell for the dock layout engine.
// Usage: Run `texeldock` in a terminal to drag splits and sidebars; redirect
// stdout (or pass -dump) to print the computed layout as JSON instead.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/term"

	"github.com/framegrace/texeldock/config"
	"github.com/framegrace/texeldock/dock"
	"github.com/framegrace/texeldock/internal/termview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texeldock", flag.ContinueOnError)

	dump := fs.Bool("dump", false, "Print the demo layout as JSON and exit")
	width := fs.Int("width", 120, "Window width used by -dump")
	height := fs.Int("height", 40, "Window height used by -dump")
	debug := fs.Bool("debug", false, "Trace every tree operation in the log")
	metricsAddr := fs.String("metrics", "", "Serve Prometheus metrics on this address (overrides metrics.listen)")
	logPath := fs.String("log", filepath.Join(os.TempDir(), "texeldock.log"), "Log file for interactive mode")
	noWatch := fs.Bool("no-watch", false, "Do not reload texeldock.json when it changes")
	noPersist := fs.Bool("no-persist", false, "Do not save sidebar state to texeldock.json on exit")
	configPath := fs.String("config", "", "Config file to use instead of the default location")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	interactive := !*dump && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		closeLog, err := redirectLog(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closeLog()
	} else {
		log.SetOutput(os.Stderr)
	}
	dock.SetDebug(*debug)
	if *configPath != "" {
		if err := os.Setenv(config.PathEnv, *configPath); err != nil {
			return fmt.Errorf("set config path: %w", err)
		}
	}

	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("texeldock: using defaults after config error: %v", err)
	}
	ws := dock.NewWorkspace(dock.SettingsFromConfig(cfg))
	if err := buildDemo(ws); err != nil {
		return fmt.Errorf("build demo layout: %w", err)
	}

	if !interactive {
		return writeDump(os.Stdout, ws, *width, *height)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := *metricsAddr
	if addr == "" {
		addr = cfg.MetricsListen()
	}
	if addr != "" {
		go serveMetrics(ctx, addr)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	view := termview.NewView(ws, termview.NewTcellScreenDriver(screen))

	if !*noWatch {
		go func() {
			err := config.Watch(ctx, func(cfg config.Config) {
				settings := dock.SettingsFromConfig(cfg)
				if err := view.Post(func(ws *dock.Workspace) { ws.ApplySettings(settings) }); err != nil {
					log.Printf("texeldock: dropped config update: %v", err)
				}
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("texeldock: config watch stopped: %v", err)
			}
		}()
	}

	if err := view.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if !*noPersist {
		if err := config.Update(ws.StoreSidebars); err != nil {
			log.Printf("texeldock: save sidebar state: %v", err)
		}
	}
	return nil
}

func redirectLog(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { _ = f.Close() }, nil
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Printf("texeldock: serving metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("texeldock: metrics server: %v", err)
	}
}
