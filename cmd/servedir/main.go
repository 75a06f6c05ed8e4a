package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/servedir/core/config"
	"github.com/dmitrymomot/servedir/core/dispatch"
	"github.com/dmitrymomot/servedir/core/logger"
	"github.com/dmitrymomot/servedir/core/server"
)

type appConfig struct {
	Server   server.Config
	Logger   logger.Config
	Dispatch dispatch.Config

	Host string `env:"SERVEDIR_HOST" envDefault:"localhost"`
	Port string `env:"SERVEDIR_PORT" envDefault:"8080"`
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fatal("invalid configuration: %v", err)
	}

	host := flag.String("host", cfg.Host, "host to bind")
	port := flag.String("port", cfg.Port, "port to listen on")
	dir := flag.String("dir", cfg.Dispatch.Root, "directory to serve")
	index := flag.String("index", cfg.Dispatch.IndexFile, "index file served for directories")
	logFile := flag.String("log", cfg.Logger.FilePath, "log file path")
	silent := flag.Bool("silent", cfg.Logger.Silent, "suppress all logging")
	flag.Parse()

	// The dispatcher never validates the document root; this is the one
	// place that does, before anything starts serving.
	root, err := filepath.Abs(*dir)
	if err != nil {
		fatal("cannot resolve directory %q: %v", *dir, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		fatal("directory does not exist: %s", root)
	}
	if !info.IsDir() {
		fatal("not a directory: %s", root)
	}

	log, err := logger.NewFromConfig(logger.Config{FilePath: *logFile, Silent: *silent})
	if err != nil {
		fatal("%v", err)
	}

	d := dispatch.New(root,
		dispatch.WithIndexFile(*index),
		dispatch.WithLogger(log),
	)

	cfg.Server.Addr = net.JoinHostPort(*host, *port)
	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.Close()
		fatal("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.Green("Serving %s on http://%s", root, cfg.Server.Addr)
	color.White("Log file: %s", *logFile)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(gctx, d))

	err = g.Wait()
	log.Close()
	if err != nil {
		fatal("%v", err)
	}

	color.Yellow("Server stopped")
}

func fatal(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "Error: "+fmt.Sprintf(format, args...)+"\n")
	os.Exit(1)
}
