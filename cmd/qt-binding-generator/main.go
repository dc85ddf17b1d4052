// Package main provides the CLI entrypoint for qt-binding-generator.
//
// qt-binding-generator reads a binding file describing objects, lists and
// trees and writes:
//   - a Qt header and source exposing them as QObject and QAbstractItemModel
//     subclasses
//   - a Rust interface module with the extern "C" entry points and traits
//   - a Rust implementation module to start from, written only once
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"

	"qt-binding-generator/internal/ctxlog"
	"qt-binding-generator/internal/gen"
	"qt-binding-generator/internal/schema"
)

// Environment variables providing flag defaults. A .env file in the working
// directory is read first.
const (
	envOverwriteImplementation = "QTBG_OVERWRITE_IMPLEMENTATION"
	envLogLevel                = "QTBG_LOG_LEVEL"
)

var errMissingBindingFile = errors.New("missing binding file")

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	bindingFile             string
	overwriteImplementation bool
	dump                    bool
	logLevel                string
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	// the .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	opts, err := parseArgs(args, errW)
	if err != nil {
		return err
	}

	logger := newLogger(opts.logLevel, errW)
	ctx = ctxlog.WithLogger(ctx, logger)

	cfg, err := schema.Load(ctx, opts.bindingFile, schema.Options{})
	if err != nil {
		return err
	}

	if opts.dump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		dumper.Fdump(outW, cfg)
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{OverwriteImplementation: opts.overwriteImplementation})

	files, err := generator.Generate(cfg)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(ctx, files); err != nil {
		return err
	}

	logger.Info("Generated bindings.", "config", opts.bindingFile, "objects", len(cfg.Objects))

	return nil
}

func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options

	flagSet := flag.NewFlagSet("qt-binding-generator", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
qt-binding-generator - generates Qt and Rust code from a binding file.

Usage:
  qt-binding-generator [options] BINDING_FILE

Options:
`)
		flagSet.PrintDefaults()
	}

	overwrite, _ := strconv.ParseBool(os.Getenv(envOverwriteImplementation))

	logLevel := os.Getenv(envLogLevel)
	if logLevel == "" {
		logLevel = "info"
	}

	flagSet.BoolVar(&opts.overwriteImplementation, "overwrite-implementation", overwrite,
		"Overwrite the Rust implementation module if it exists.")
	flagSet.BoolVar(&opts.dump, "dump", false, "Print the resolved binding before generating.")
	flagSet.StringVar(&opts.logLevel, "log-level", logLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	verbose := flagSet.Bool("v", false, "Verbose output, same as -log-level debug.")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}

	if *verbose {
		opts.logLevel = "debug"
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()

		return opts, errMissingBindingFile
	}

	opts.bindingFile = flagSet.Arg(0)

	return opts, nil
}

// newLogger creates a text logger; unknown levels fall back to info.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
