package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: guidepdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert the published Markdown guides to PDF.")
	fmt.Fprintln(w, "Sources are read from <root>/resources/guides and written to")
	fmt.Fprintln(w, "<root>/public/resources unless the config or flags say otherwise.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Locations:")
	fmt.Fprintln(w, "      --root <dir>          Project root (default: working directory)")
	fmt.Fprintln(w, "      --source <dir>        Source directory, relative to root")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, relative to root")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show warnings and errors")
	fmt.Fprintln(w, "  -v, --verbose             Show lint findings and a summary")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status: 0 ok (missing sources only warn), 1 error, 2 usage, 3 write failure.")
}
