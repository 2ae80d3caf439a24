package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tmkn/verso"
)

var (
	force   = flag.Bool("f", false, "Force generation by deleting the destination if it already exists.")
	verbose = flag.Bool("v", false, "Log at debug level.")
	quiet   = flag.Bool("q", false, "Log errors only.")
	baseURL = flag.String("base-url", "", "Override the site's base URL.")
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: verso [flags] [source] destination")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	if *quiet {
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	src, dest := ".", ""
	switch flag.NArg() {
	case 1:
		dest = flag.Arg(0)
	case 2:
		src, dest = flag.Arg(0), flag.Arg(1)
	default:
		usage()
		os.Exit(2)
	}

	site, err := verso.NewSite(src, dest, verso.Options{
		Force:   *force,
		BaseURL: *baseURL,
	})
	if err != nil {
		slog.Error("initialization failed", "error", err)
		os.Exit(1)
	}

	if err := site.Generate(); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
