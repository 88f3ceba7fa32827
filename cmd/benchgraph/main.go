// Command benchgraph inspects, converts and generates DIMACS benchmark graphs.
//
// Usage:
//
//	benchgraph [-config file] [-data dir] [-log-level level] <command> [args]
//
// Commands:
//
//	info <file>                      decode a .col/.col.b/.mis file and print statistics
//	convert [-comment c] <in> <out>  re-encode; the output suffix picks .b, .g6 or text
//	generate [flags]                 write a synthetic graph (see generate -h)
//	bhoslib [-clique] <family> <i>   load a BHOSLIB instance from the data root
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dimacsbench/internal/config"
	"github.com/katalvlaran/dimacsbench/internal/logger"
)

// errUsage marks argument errors; main exits with status 2 for them.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// env is what every subcommand receives.
type env struct {
	cfg    *config.Config
	log    logger.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("benchgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (yaml, json or toml)")
	dataRoot := fs.String("data", "", "benchmark data root (overrides config)")
	level := fs.String("log-level", "", "log level (overrides config)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *dataRoot != "" {
		cfg.DataRoot = *dataRoot
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	if err = config.Validate(cfg); err != nil {
		return err
	}

	e := &env{
		cfg:    cfg,
		log:    logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: stderr, Service: "benchgraph"}),
		stdout: stdout,
		stderr: stderr,
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, cmdArgs := rest[0], rest[1:]
	e.log = logger.Named(e.log, cmd)

	switch cmd {
	case "info":
		return cmdInfo(e, cmdArgs)
	case "convert":
		return cmdConvert(e, cmdArgs)
	case "generate":
		return cmdGenerate(e, cmdArgs)
	case "bhoslib":
		return cmdBhoslib(e, cmdArgs)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
