// Package main is the entry point for the upcode structural editor.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gregoor/upcode/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if !opts.Debug {
		// The terminal owns the screen; keep stray logs out of it.
		log.SetOutput(io.Discard)
	}

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		application.Quit()
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&opts.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.ReadOnly, "readonly", false, "Open the document read-only")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "upcode - structural JSON editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: upcode [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  upcode                 Reopen the last session\n")
		fmt.Fprintf(os.Stderr, "  upcode data.json       Open a file\n")
		fmt.Fprintf(os.Stderr, "  upcode -readonly x.json  Browse without editing\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("upcode %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts.File = flag.Arg(0)
	return opts
}
