package main

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// cliFlags holds every command-line flag.
type cliFlags struct {
	root    string
	source  string
	output  string
	config  string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses args (without the program name).
// The command takes no positional arguments.
func parseFlags(args []string, env *Environment) (*cliFlags, error) {
	fs := flag.NewFlagSet("guidepdf", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	f := &cliFlags{}

	fs.StringVar(&f.root, "root", "", "project root (default: working directory)")
	fs.StringVar(&f.source, "source", "", "guide source directory, relative to root")
	fs.StringVarP(&f.output, "output", "o", "", "PDF output directory, relative to root")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show lint findings and a summary")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(fs.Args(), " "))
	}
	if f.quiet && f.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	return f, nil
}
